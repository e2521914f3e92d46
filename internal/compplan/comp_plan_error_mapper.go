package compplan

import (
	"errors"
	"strings"

	compplanerrors "go-agency/internal/compplan/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return compplanerrors.ErrPlanNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_comp_plan_name":
			return compplanerrors.ErrPlanNameTaken
		case "uq_comp_plan_tier_threshold":
			return compplanerrors.ErrInvalidTierConfiguration
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_comp_plan_name") {
		return compplanerrors.ErrPlanNameTaken
	}

	return err
}
