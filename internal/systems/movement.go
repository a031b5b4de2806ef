package systems

import (
	"protocol-playground/internal/domain"
	"protocol-playground/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyMove перемещает m в направлении dir.
// distance передается как есть; Enemy его игнорирует и делает единичный шаг.
func ApplyMove(m domain.Movable, dir domain.Direction, distance int) {
	logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"direction": dir.String(),
		"distance":  distance,
	}).Debug("Moving entity.")

	m.Move(dir, distance)
}

// ApplyPath выполняет последовательность единичных шагов
func ApplyPath(m domain.Movable, path []domain.Direction) {
	for _, dir := range path {
		ApplyMove(m, dir, 1)
	}
}
