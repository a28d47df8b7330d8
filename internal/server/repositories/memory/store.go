// Package memory keeps users and tasks in process memory. It backs the
// "memory" storage mode and the HTTP end-to-end tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophtasks/internal/common"
	"github.com/dmitrijs2005/gophtasks/internal/server/models"
	"github.com/google/uuid"
)

// Store is the shared state behind UserRepository and TaskRepository.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*models.User // by id
	usersByName map[string]string       // username -> id
	tasks       map[string]*models.Task // by id
	now         func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]*models.User),
		usersByName: make(map[string]string),
		tasks:       make(map[string]*models.Task),
		now:         time.Now,
	}
}

// UserRepository implements users.Repository.
type UserRepository struct{ s *Store }

// TaskRepository implements tasks.Repository.
type TaskRepository struct{ s *Store }

func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }
func (s *Store) Tasks() *TaskRepository { return &TaskRepository{s: s} }

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.usersByName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.s.now()

	stored := *user
	r.s.users[user.ID] = &stored
	r.s.usersByName[user.UserName] = user.ID

	return user, nil
}

func (r *UserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.usersByName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.s.users[id]
	return &u, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	task.ID = uuid.NewString()
	task.CreatedAt = now
	task.UpdatedAt = now

	stored := *task
	r.s.tasks[task.ID] = &stored

	return task, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*models.Task, 0)
	for _, t := range r.s.tasks {
		if t.OwnedBy(userID) {
			c := *t
			result = append(result, &c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// GetForUpdate returns a copy of the task. The memory store has no row locks;
// each call is atomic on its own.
func (r *TaskRepository) GetForUpdate(ctx context.Context, id string) (*models.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r *TaskRepository) UpdateText(ctx context.Context, task *models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tasks[task.ID]
	if !ok {
		return common.ErrorNotFound
	}
	t.Text = task.Text
	t.UpdatedAt = r.s.now()
	task.UpdatedAt = t.UpdatedAt
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.s.tasks, id)
	return nil
}

// CountTasks reports how many tasks are stored across all users.
func (s *Store) CountTasks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// CountUsers reports how many users are stored.
func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
