package share_fx

import (
	"tripscout/internal/repositories"
	"tripscout/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	ProvideSavedPlanRepository,
	ProvideShareService)

func ProvideSavedPlanRepository(db *gorm.DB) repositories.ISavedPlanRepository {
	return repositories.NewSavedPlanRepository(db)
}

func ProvideShareService(repo repositories.ISavedPlanRepository) services.ShareServiceInterface {
	return services.NewShareService(repo)
}
