package jsonstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/akozyrev/storepay/internal/core/domain"
)

const promosFile = "promos.json"
const promoUsageFile = "promo_usage.json"

type PromoStore struct {
	store *Store
}

func NewPromoStore(store *Store) *PromoStore {
	return &PromoStore{store: store}
}

type promoUsageEntry struct {
	TotalUses int64            `json:"total_uses"`
	Users     map[string]int64 `json:"users"`
}

func (s *PromoStore) GetPromo(ctx context.Context, code string) (*domain.Promo, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	promos := map[string]*domain.Promo{}
	if err := s.store.readFile(promosFile, &promos); err != nil {
		return nil, err
	}

	promo, ok := promos[normalize(code)]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	promo.Code = normalize(code)
	return promo, nil
}

func (s *PromoStore) GetUsage(ctx context.Context, code string) (*domain.PromoUsage, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	all := map[string]*promoUsageEntry{}
	if err := s.store.readFile(promoUsageFile, &all); err != nil {
		return nil, err
	}

	usage := domain.PromoUsage{ByUser: make(map[int64]int64)}
	entry, ok := all[normalize(code)]
	if !ok {
		return &usage, nil
	}

	usage.TotalUses = entry.TotalUses
	for uid, n := range entry.Users {
		id, err := strconv.ParseInt(uid, 10, 64)
		if err != nil {
			continue
		}
		usage.ByUser[id] = n
	}

	return &usage, nil
}

func (s *PromoStore) RecordUsage(ctx context.Context, code string, userID int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	all := map[string]*promoUsageEntry{}
	if err := s.store.readFile(promoUsageFile, &all); err != nil {
		return err
	}

	entry, ok := all[normalize(code)]
	if !ok {
		entry = &promoUsageEntry{Users: make(map[string]int64)}
		all[normalize(code)] = entry
	}

	entry.TotalUses++
	entry.Users[key(userID)]++

	return s.store.writeFile(promoUsageFile, all)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
