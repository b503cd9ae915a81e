// File: /registry/registry.go
package registry

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"volunteerhub-api/models"
)

// SnapshotLimit caps how many rows a refresh pulls from the backing store
const SnapshotLimit = 100

// Registry mirrors the opportunities table into process memory and answers
// read queries from that snapshot. Every successful mutation re-queries the
// backing store and swaps the whole snapshot, so reads after a write always
// see the stored state. The swap is atomic under the mutex; readers never
// observe a partially rebuilt list.
type Registry struct {
	db  *gorm.DB
	log *logrus.Logger

	mu       sync.RWMutex
	snapshot []models.Opportunity
}

func New(db *gorm.DB, log *logrus.Logger) *Registry {
	return &Registry{db: db, log: log}
}

// Refresh replaces the snapshot with the current store contents, newest
// first. On store failure the previous snapshot stays in place.
func (r *Registry) Refresh() error {
	var opportunities []models.Opportunity
	err := r.db.Order("created_at DESC").Limit(SnapshotLimit).Find(&opportunities).Error
	if err != nil {
		r.log.WithError(err).Error("registry: failed to reload opportunities")
		return err
	}

	for i := range opportunities {
		opportunities[i].Decorate()
	}

	r.mu.Lock()
	r.snapshot = opportunities
	r.mu.Unlock()

	return nil
}

// All returns a copy of the current snapshot
func (r *Registry) All() []models.Opportunity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Opportunity, len(r.snapshot))
	copy(out, r.snapshot)
	return out
}

// Get looks up a single opportunity in the snapshot by ID
func (r *Registry) Get(id string) (*models.Opportunity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.snapshot {
		if r.snapshot[i].ID == id {
			o := r.snapshot[i]
			return &o, true
		}
	}
	return nil, false
}

// Filtered returns the entries of list whose zip code equals zipCode.
// A nil list means "filter the whole snapshot". Zip codes are compared as
// integers; string zip input is converted at the HTTP boundary.
func (r *Registry) Filtered(zipCode int, list []models.Opportunity) []models.Opportunity {
	if list == nil {
		list = r.All()
	}

	out := make([]models.Opportunity, 0, len(list))
	for _, o := range list {
		if o.ZipCode == zipCode {
			out = append(out, o)
		}
	}
	return out
}

// Sorted returns list ordered by lower-cased title. Descending order uses
// the inverted comparator, so with distinct lower-cased titles it is the
// exact reverse of ascending. Order among equal titles is unspecified.
func (r *Registry) Sorted(ascending bool, list []models.Opportunity) []models.Opportunity {
	if list == nil {
		list = r.All()
	}

	out := make([]models.Opportunity, len(list))
	copy(out, list)

	sort.Slice(out, func(i, j int) bool {
		a := strings.ToLower(out[i].Title)
		b := strings.ToLower(out[j].Title)
		if ascending {
			return a < b
		}
		return a > b
	})

	return out
}

// Joined returns the snapshot entries present in the user's joined-events
// list, with the per-viewer joined flag set.
func (r *Registry) Joined(user *models.User) []models.Opportunity {
	out := make([]models.Opportunity, 0)
	for _, o := range r.All() {
		if user.HasJoined(o.ID) {
			o.Joined = true
			out = append(out, o)
		}
	}
	return out
}

// Annotate sets the per-viewer joined flag on each entry of list
func (r *Registry) Annotate(user *models.User, list []models.Opportunity) []models.Opportunity {
	if user == nil {
		return list
	}
	for i := range list {
		list[i].Joined = user.HasJoined(list[i].ID)
	}
	return list
}

// Add persists a new opportunity and refreshes the snapshot. On store
// failure it returns nil and the registry is left untouched.
func (r *Registry) Add(o *models.Opportunity) (*models.Opportunity, error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	if err := r.db.Create(o).Error; err != nil {
		r.log.WithError(err).WithField("title", o.Title).Error("registry: failed to create opportunity")
		return nil, err
	}

	if err := r.Refresh(); err != nil {
		return nil, err
	}

	return o, nil
}

// Update applies a partial field patch plus a server-set updated_at, then
// refreshes the snapshot and returns the updated record. Returns nil on
// store failure.
func (r *Registry) Update(id string, patch map[string]interface{}) (*models.Opportunity, error) {
	patch["updated_at"] = time.Now()

	if err := r.db.Model(&models.Opportunity{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		r.log.WithError(err).WithField("opportunity_id", id).Error("registry: failed to update opportunity")
		return nil, err
	}

	if err := r.Refresh(); err != nil {
		return nil, err
	}

	updated, ok := r.Get(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return updated, nil
}

// Remove deletes by ID and refreshes the snapshot. Store failures are
// logged but never surfaced to the caller.
func (r *Registry) Remove(id string) {
	if err := r.db.Where("id = ?", id).Delete(&models.Opportunity{}).Error; err != nil {
		r.log.WithError(err).WithField("opportunity_id", id).Error("registry: failed to delete opportunity")
		return
	}

	_ = r.Refresh()
}
