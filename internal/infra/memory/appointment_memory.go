package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PatinhasPetShop01/petshop-api/internal/models"
)

type AppointmentMemoryRepository struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]models.Appointment
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		nextID: 1,
		items:  make(map[uint]models.Appointment),
	}
}

func (r *AppointmentMemoryRepository) List(ctx context.Context) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appointments := make([]models.Appointment, 0, len(r.items))
	for _, ap := range r.items {
		appointments = append(appointments, ap)
	}

	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Date.Before(appointments[j].Date)
	})
	return appointments, nil
}

func (r *AppointmentMemoryRepository) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &ap, nil
}

func (r *AppointmentMemoryRepository) Create(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap.ID = r.nextID
	r.nextID++
	r.items[ap.ID] = *ap
	return nil
}

func (r *AppointmentMemoryRepository) Update(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[ap.ID] = *ap
	return nil
}
