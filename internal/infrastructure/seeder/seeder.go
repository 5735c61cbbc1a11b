package seeder

import (
	"errors"
	"log"

	"github.com/castledice/storage/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	uowFactory domain.UnitOfWorkFactory
}

// NewSeeder creates a new seeder instance
func NewSeeder(uowFactory domain.UnitOfWorkFactory) *Seeder {
	return &Seeder{
		uowFactory: uowFactory,
	}
}

// SeedUsers seeds the database with initial users and wallets
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	users := []struct {
		authID  int64
		name    string
		address string
	}{
		{34633089486, "player1", "0x8ba1f109551bd432803012645ac136ddd64dba72"},
		{34679664254, "player2", "0xab5801a7d398351b8be11c439e05c5b3259aec9b"},
		{34616761765, "player3", "0x4bbeeb066ed09b7aed07bf39eee0460dfa261520"},
	}

	uow, err := s.uowFactory.Begin()
	if err != nil {
		return err
	}
	defer uow.Rollback()

	for _, u := range users {
		if _, err := uow.Users().GetByAuthID(u.authID); err == nil {
			log.Printf("User already exists, skipping.")
			continue
		} else if _, ok := domain.IsNotFound(err); !ok {
			return err
		}

		user := &domain.User{
			AuthID: u.authID,
			Name:   u.name,
			Wallet: &domain.Wallet{Address: u.address},
		}
		if _, err := uow.Users().Create(user); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	log.Printf("User seeding completed successfully")
	return nil
}

// SeedAssets seeds demo assets and ownership records
func (s *Seeder) SeedAssets() error {
	log.Printf("Seeding assets...")

	uow, err := s.uowFactory.Begin()
	if err != nil {
		return err
	}
	defer uow.Rollback()

	records := []struct {
		cid    string
		authID int64
		nftID  int64
	}{
		{"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", 34633089486, 10},
		{"QmbWqxBEKC3P8tqsKc98xmWNzrzDtRLMiMPL8wBuTGsMnR", 34679664254, 11},
	}

	for _, rec := range records {
		if _, err := uow.Assets().GetUsersAsset(rec.nftID); err == nil {
			log.Printf("Ownership record already exists, skipping.")
			continue
		} else if _, ok := domain.IsNotFound(err); !ok {
			return err
		}

		asset, err := uow.Assets().CreateAsset(rec.cid)
		if err != nil {
			return err
		}
		if _, err := uow.Assets().AddAssetToUser(asset.ID, rec.authID, rec.nftID); err != nil {
			var exists *domain.UsersAssetAlreadyExistsError
			if errors.As(err, &exists) {
				continue
			}
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	log.Printf("Asset seeding completed successfully")
	return nil
}
