package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"careerhub/internal/domain/job"
	"careerhub/internal/infrastructure/cache"
	"careerhub/internal/pkg/slug"
	"careerhub/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrExpiryInPast    = errors.New("expiry date must be today or later")
	ErrExpiryDecision  = errors.New("activation requires an expiry decision")
	ErrSlugProbeBudget = errors.New("could not find a free slug")
	ErrJobClosed       = errors.New("job is not accepting applications")
)

const slugProbeLimit = 1000

type JobCreateInput struct {
	Title        string
	Description  string
	DepartmentID *uuid.UUID
	TypeID       *uuid.UUID
	LocationID   *uuid.UUID
	ExpiryDate   *time.Time
	Status       job.Status
}

type JobUpdateInput = JobCreateInput

// StatusChangeInput captures the two-step activation confirmation: flipping a
// job to Active must either clear the expiry or set one that is today or
// later.
type StatusChangeInput struct {
	Status      job.Status
	ClearExpiry bool
	ExpiryDate  *time.Time
}

type JobListParams struct {
	DepartmentID *uuid.UUID
	TypeID       *uuid.UUID
	LocationID   *uuid.UUID
	Limit        int
	Offset       int
}

// JobView is a job as presented to readers: status is the effective status
// after the expiry overlay, never the raw stored value.
type JobView struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Department   string
	Type         string
	Location     string
	ExpiryDate   *time.Time
	Status       job.Status
	StoredStatus job.Status
	Slug         string
	Views        int64
	CreatedAt    time.Time
}

type JobUsecase interface {
	ListPublic(ctx context.Context, params JobListParams) ([]JobView, error)
	ListAdmin(ctx context.Context, params JobListParams) ([]JobView, error)
	GetPublicBySlug(ctx context.Context, slugValue string) (JobView, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobView, error)
	Create(ctx context.Context, in JobCreateInput) (JobView, error)
	Update(ctx context.Context, id uuid.UUID, in JobUpdateInput) (JobView, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, in StatusChangeInput) (JobView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BackfillSlugs(ctx context.Context) (int, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	cache  *cache.Redis
	logger *log.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs repository.JobRepository, c *cache.Redis, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: c, logger: logger, now: time.Now}
}

func (u *Jobs) ListPublic(ctx context.Context, params JobListParams) ([]JobView, error) {
	key := cache.JobListKey(
		idPart(params.DepartmentID), idPart(params.TypeID), idPart(params.LocationID),
		fmt.Sprintf("%d", params.Limit), fmt.Sprintf("%d", params.Offset),
	)

	var cached []JobView
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := u.jobs.List(ctx, repository.JobListFilter{
		DepartmentID: params.DepartmentID,
		TypeID:       params.TypeID,
		LocationID:   params.LocationID,
		PublicOnly:   true,
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
	if err != nil {
		return nil, err
	}

	out := u.views(rows)
	if err := u.cache.SetJSON(ctx, key, out, cache.DefaultTTL); err != nil && u.logger != nil {
		u.logger.Printf("job list cache write failed: %v", err)
	}
	return out, nil
}

func (u *Jobs) ListAdmin(ctx context.Context, params JobListParams) ([]JobView, error) {
	rows, err := u.jobs.List(ctx, repository.JobListFilter{
		DepartmentID: params.DepartmentID,
		TypeID:       params.TypeID,
		LocationID:   params.LocationID,
		Limit:        params.Limit,
		Offset:       params.Offset,
	})
	if err != nil {
		return nil, err
	}
	return u.views(rows), nil
}

// GetPublicBySlug serves the public detail page: only effective-Active jobs
// are visible, and each successful read bumps the views counter.
func (u *Jobs) GetPublicBySlug(ctx context.Context, slugValue string) (JobView, error) {
	row, err := u.jobs.GetBySlug(ctx, slugValue)
	if err != nil {
		return JobView{}, err
	}
	if row.Effective(u.now()) != job.StatusActive {
		return JobView{}, job.ErrNotFound
	}

	if err := u.jobs.IncrementViews(ctx, row.ID); err != nil && u.logger != nil {
		u.logger.Printf("views increment failed: job=%s err=%v", row.ID, err)
	}
	row.Views++

	return u.view(row), nil
}

func (u *Jobs) GetByID(ctx context.Context, id uuid.UUID) (JobView, error) {
	row, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return JobView{}, err
	}
	return u.view(row), nil
}

func (u *Jobs) Create(ctx context.Context, in JobCreateInput) (JobView, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || !in.Status.Valid() {
		return JobView{}, ErrInvalidInput
	}

	id := uuid.New()
	s, err := u.assignSlug(ctx, title, id)
	if err != nil {
		return JobView{}, err
	}

	j := job.Job{
		ID:           id,
		Title:        title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
		TypeID:       in.TypeID,
		LocationID:   in.LocationID,
		ExpiryDate:   in.ExpiryDate,
		Status:       in.Status,
		Slug:         s,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return JobView{}, err
	}

	u.invalidate(ctx)
	return u.GetByID(ctx, id)
}

// Update regenerates the slug from the new title. The probe excludes the
// job's own id, so an unchanged title keeps the current slug untouched.
func (u *Jobs) Update(ctx context.Context, id uuid.UUID, in JobUpdateInput) (JobView, error) {
	current, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return JobView{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" || !in.Status.Valid() {
		return JobView{}, ErrInvalidInput
	}

	s := current.Slug
	if slug.Make(title) != slug.Make(current.Title) || s == "" {
		s, err = u.assignSlug(ctx, title, id)
		if err != nil {
			return JobView{}, err
		}
	}

	j := job.Job{
		ID:           id,
		Title:        title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
		TypeID:       in.TypeID,
		LocationID:   in.LocationID,
		ExpiryDate:   in.ExpiryDate,
		Status:       in.Status,
		Slug:         s,
	}
	if err := u.jobs.Update(ctx, j); err != nil {
		return JobView{}, err
	}

	u.invalidate(ctx)
	return u.GetByID(ctx, id)
}

func (u *Jobs) ChangeStatus(ctx context.Context, id uuid.UUID, in StatusChangeInput) (JobView, error) {
	if !in.Status.Valid() {
		return JobView{}, ErrInvalidInput
	}

	current, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return JobView{}, err
	}

	expiry := current.ExpiryDate
	if in.Status == job.StatusActive && current.Status != job.StatusActive {
		// Reactivation is a deliberate two-step choice, never a silent toggle.
		switch {
		case in.ClearExpiry:
			expiry = nil
		case in.ExpiryDate != nil:
			if dateOnlyUTC(*in.ExpiryDate).Before(dateOnlyUTC(u.now())) {
				return JobView{}, ErrExpiryInPast
			}
			expiry = in.ExpiryDate
		default:
			return JobView{}, ErrExpiryDecision
		}
	}

	if err := u.jobs.UpdateStatus(ctx, id, in.Status, expiry); err != nil {
		return JobView{}, err
	}

	u.invalidate(ctx)
	return u.GetByID(ctx, id)
}

func (u *Jobs) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx)
	return nil
}

// BackfillSlugs assigns {base}-{id} to every job missing a slug in one
// all-or-nothing batch. The id suffix guarantees uniqueness without per-row
// probing, even when titles collide.
func (u *Jobs) BackfillSlugs(ctx context.Context) (int, error) {
	missing, err := u.jobs.ListMissingSlugs(ctx)
	if err != nil {
		return 0, err
	}
	if len(missing) == 0 {
		return 0, nil
	}

	assignments := make([]repository.SlugAssignment, 0, len(missing))
	for _, j := range missing {
		base := slug.Make(j.Title)
		if base == "" {
			base = "job"
		}
		assignments = append(assignments, repository.SlugAssignment{
			ID:   j.ID,
			Slug: fmt.Sprintf("%s-%s", base, j.ID),
		})
	}

	if err := u.jobs.AssignSlugs(ctx, assignments); err != nil {
		return 0, err
	}

	u.invalidate(ctx)
	return len(assignments), nil
}

// assignSlug probes base, base-1, base-2, ... and settles on the lowest free
// suffix. The self id is excluded so regenerating against an unchanged title
// is idempotent.
func (u *Jobs) assignSlug(ctx context.Context, title string, selfID uuid.UUID) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "job"
	}

	candidate := base
	for i := 1; i <= slugProbeLimit; i++ {
		taken, err := u.jobs.SlugTaken(ctx, candidate, selfID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	return "", ErrSlugProbeBudget
}

func (u *Jobs) invalidate(ctx context.Context) {
	if err := u.cache.InvalidateJobLists(ctx); err != nil && u.logger != nil {
		u.logger.Printf("job list cache invalidation failed: %v", err)
	}
}

func (u *Jobs) views(rows []repository.JobRow) []JobView {
	out := make([]JobView, 0, len(rows))
	for _, r := range rows {
		out = append(out, u.view(r))
	}
	return out
}

func (u *Jobs) view(r repository.JobRow) JobView {
	return JobView{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Department:   r.Department,
		Type:         r.Type,
		Location:     r.Location,
		ExpiryDate:   r.ExpiryDate,
		Status:       r.Effective(u.now()),
		StoredStatus: r.Status,
		Slug:         r.Slug,
		Views:        r.Views,
		CreatedAt:    r.CreatedAt,
	}
}

func idPart(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

// dateOnlyUTC truncates to the calendar date in UTC. Expiry dates arrive as
// plain dates parsed at UTC midnight, so comparing instants in the server's
// local zone would reject "today" anywhere west of UTC.
func dateOnlyUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
