package seeder

func Defaults() []Seeder {
	return []Seeder{
		LookupsSeeder{},
		FormFieldsSeeder{},
	}
}
