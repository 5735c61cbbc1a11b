package app

import (
	"github.com/castledice/storage/internal/domain"
	"github.com/castledice/storage/internal/infrastructure/uow"

	"gorm.io/gorm"
)

func (a *application) InitUnitOfWorkFactory(db *gorm.DB) domain.UnitOfWorkFactory {
	return uow.NewFactory(db)
}
