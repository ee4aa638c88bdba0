package interfaces

import (
	"context"
	"topup_store/internal/domain/entities"
)

// ISettingsRepository reads and overwrites the singleton settings documents.
// Missing documents come back as zero values.
type ISettingsRepository interface {
	GetGeneral(ctx context.Context) (entities.GeneralSettings, error)
	SaveGeneral(ctx context.Context, s entities.GeneralSettings) error
	GetAssets(ctx context.Context) (entities.Assets, error)
	SaveAssets(ctx context.Context, a entities.Assets) error
}
