package platform

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"agency-content-ops/internal/model"
	"agency-content-ops/internal/recurring/repository"
	pkgLog "agency-content-ops/pkg/log"
)

// errNotFound is what the client reports for a 404; callers see the
// repository-level sentinel.
var errNotFound = repository.ErrRecurringNotFound

const defaultCacheSize = 256

type implRepository struct {
	client *Client
	l      pkgLog.Logger

	// Read-through caches over the platform API, keyed by resource identity
	// and explicitly invalidated after successful writes.
	templateCache *lru.Cache[string, model.RecurringTask]
	listCache     *lru.Cache[string, []model.RecurringTask]
}

// New creates a new platform-backed recurring repository with a read cache
// of the given size.
func New(client *Client, cacheSize int, l pkgLog.Logger) (repository.PlatformRepository, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	templateCache, err := lru.New[string, model.RecurringTask](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create template cache: %w", err)
	}
	listCache, err := lru.New[string, []model.RecurringTask](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create list cache: %w", err)
	}

	return &implRepository{
		client:        client,
		l:             l,
		templateCache: templateCache,
		listCache:     listCache,
	}, nil
}

func (r *implRepository) ListRecurring(ctx context.Context, opt repository.ListRecurringOptions) ([]model.RecurringTask, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = 20
	}

	key := listCacheKey(opt.WorkspaceID, opt.ActiveOnly, limit, opt.Offset)
	if cached, ok := r.listCache.Get(key); ok {
		return cached, nil
	}

	dtos, err := r.client.ListRecurring(ctx, opt.WorkspaceID, opt.ActiveOnly, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "platform repository: failed to list recurring templates: %v", err)
		return nil, err
	}

	templates := make([]model.RecurringTask, 0, len(dtos))
	for i := range dtos {
		templates = append(templates, dtoToModel(&dtos[i]))
	}

	r.listCache.Add(key, templates)
	return templates, nil
}

func (r *implRepository) GetRecurring(ctx context.Context, workspaceID, id string) (model.RecurringTask, error) {
	if cached, ok := r.templateCache.Get(id); ok {
		return cached, nil
	}

	dto, err := r.client.GetRecurring(ctx, workspaceID, id)
	if err != nil {
		return model.RecurringTask{}, err
	}

	template := dtoToModel(dto)
	r.templateCache.Add(id, template)
	return template, nil
}

func (r *implRepository) UpdateRecurring(ctx context.Context, workspaceID, id string, opt repository.UpdateRecurringOptions) (model.RecurringTask, error) {
	req := updateRecurringRequest{
		IsActive:   opt.IsActive,
		Frequency:  opt.Frequency,
		DayOfWeek:  opt.DayOfWeek,
		DayOfMonth: opt.DayOfMonth,
	}
	if opt.NextGenerationAt != nil {
		s := opt.NextGenerationAt.Format(time.RFC3339)
		req.NextGenerationAt = &s
	}

	dto, err := r.client.UpdateRecurring(ctx, workspaceID, id, req)
	if err != nil {
		r.l.Errorf(ctx, "platform repository: failed to update recurring template %s: %v", id, err)
		return model.RecurringTask{}, err
	}

	// Cached views of this template are stale now.
	r.invalidate(id)

	return dtoToModel(dto), nil
}

func (r *implRepository) ListDueRecurring(ctx context.Context, before time.Time) ([]model.RecurringTask, error) {
	// Never served from cache: the generation worker must see fresh state.
	dtos, err := r.client.ListDue(ctx, before)
	if err != nil {
		return nil, err
	}

	templates := make([]model.RecurringTask, 0, len(dtos))
	for i := range dtos {
		templates = append(templates, dtoToModel(&dtos[i]))
	}
	return templates, nil
}

func (r *implRepository) CreateGeneratedTask(ctx context.Context, opt repository.CreateGeneratedTaskOptions) (model.Task, error) {
	dto, err := r.client.CreateTask(ctx, createTaskRequest{
		RecurringTaskID: opt.RecurringTaskID,
		WorkspaceID:     opt.WorkspaceID,
		ClientID:        opt.ClientID,
		Title:           opt.Title,
		DueDate:         opt.DueDate.Format("2006-01-02"),
		Source:          "recurring",
	}, opt.IdempotencyKey)
	if err != nil {
		r.l.Errorf(ctx, "platform repository: failed to create generated task for template %s: %v", opt.RecurringTaskID, err)
		return model.Task{}, err
	}

	return model.Task{
		ID:          dto.ID,
		WorkspaceID: dto.WorkspaceID,
		ClientID:    dto.ClientID,
		Title:       dto.Title,
		DueDate:     dto.DueDate,
		Source:      dto.Source,
		CreateTime:  dto.CreateTime,
	}, nil
}

func (r *implRepository) SetNextGeneration(ctx context.Context, workspaceID, id string, at time.Time) error {
	s := at.Format(time.RFC3339)
	_, err := r.client.UpdateRecurring(ctx, workspaceID, id, updateRecurringRequest{NextGenerationAt: &s})
	if err != nil {
		return err
	}

	r.invalidate(id)
	return nil
}

// invalidate drops every cached view that could contain the template.
func (r *implRepository) invalidate(id string) {
	r.templateCache.Remove(id)
	r.listCache.Purge()
}

func listCacheKey(workspaceID string, activeOnly bool, limit, offset int) string {
	return fmt.Sprintf("%s|%t|%d|%d", workspaceID, activeOnly, limit, offset)
}

// dtoToModel converts a platform API record to the internal model.
func dtoToModel(dto *recurringTaskDTO) model.RecurringTask {
	task := model.RecurringTask{
		ID:          dto.ID,
		WorkspaceID: dto.WorkspaceID,
		ClientID:    dto.ClientID,
		Title:       dto.Title,
		Frequency:   model.Frequency(dto.Frequency),
		DayOfWeek:   dto.DayOfWeek,
		DayOfMonth:  dto.DayOfMonth,
		IsActive:    dto.IsActive,
		CreateTime:  dto.CreateTime,
		UpdateTime:  dto.UpdateTime,
	}

	if dto.NextGenerationAt != nil {
		if at, err := time.Parse(time.RFC3339, *dto.NextGenerationAt); err == nil {
			task.NextGenerationAt = &at
		}
	}

	return task
}
