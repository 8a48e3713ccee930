package postgres

import (
	"context"

	"github.com/aerovista/avweb/pkg/core/repo"
	"gorm.io/gorm"
)

type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	// GORM is declared explicitly because a method which is only
	// common among the union terms is not callable on a type
	// parameter; both *Conn and *Tx already provide it.
	GORM(ctx context.Context) *gorm.DB
}
