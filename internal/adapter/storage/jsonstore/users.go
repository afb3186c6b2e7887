package jsonstore

import (
	"context"
	"strconv"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
)

const usersFile = "users.json"

type UserStore struct {
	store *Store
}

func NewUserStore(store *Store) *UserStore {
	return &UserStore{store: store}
}

func (s *UserStore) load() (map[string]*domain.User, error) {
	users := map[string]*domain.User{}
	if err := s.store.readFile(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// ensure returns the stored user, creating an empty ledger row on first touch.
func ensure(users map[string]*domain.User, userID int64) *domain.User {
	user, ok := users[key(userID)]
	if !ok {
		user = &domain.User{ID: userID, FirstSeen: time.Now().UTC()}
		users[key(userID)] = user
	}
	return user
}

func (s *UserStore) UpsertUser(ctx context.Context, u *domain.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	user := ensure(users, u.ID)
	user.Username = u.Username
	user.FirstName = u.FirstName
	user.LastName = u.LastName
	user.LastSeen = time.Now().UTC()

	return s.store.writeFile(usersFile, users)
}

func (s *UserStore) ReadUser(ctx context.Context, userID int64) (*domain.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}

	user, ok := users[key(userID)]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	return user, nil
}

func (s *UserStore) AddPurchase(ctx context.Context, userID int64, amount int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	user := ensure(users, userID)
	user.TotalPurchases++
	user.TotalSpent += amount
	user.LastSeen = time.Now().UTC()

	return s.store.writeFile(usersFile, users)
}

func (s *UserStore) DebitBonus(ctx context.Context, userID int64, amount int64) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return 0, err
	}

	user := ensure(users, userID)
	debited := amount
	if user.BonusBalance < debited {
		debited = user.BonusBalance
	}
	user.BonusBalance -= debited

	if err := s.store.writeFile(usersFile, users); err != nil {
		return 0, err
	}

	return debited, nil
}

func (s *UserStore) CreditBonus(ctx context.Context, userID int64, amount int64) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}

	ensure(users, userID).BonusBalance += amount

	return s.store.writeFile(usersFile, users)
}

func (s *UserStore) TrySetReferrer(ctx context.Context, userID int64, referrerID int64) (bool, error) {
	if userID == referrerID {
		return false, nil
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return false, err
	}

	user := ensure(users, userID)
	if user.ReferrerID != nil || user.TotalPurchases > 0 {
		return false, nil
	}

	user.ReferrerID = &referrerID
	if err := s.store.writeFile(usersFile, users); err != nil {
		return false, err
	}

	return true, nil
}

func (s *UserStore) CountInvited(ctx context.Context, referrerID int64) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return 0, err
	}

	var count int64
	for _, user := range users {
		if user.ReferrerID != nil && *user.ReferrerID == referrerID {
			count++
		}
	}

	return count, nil
}
