package systems

import (
	"fmt"

	"protocol-playground/internal/domain"
	"protocol-playground/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Attacker - сущность, которая умеет атаковать и имеет позицию
type Attacker interface {
	domain.PlayerType
	domain.Attackable
}

// ApplyAttack проводит атаку attacker по target и возвращает сообщение для вывода.
// Урон виден у исходной сущности: target - ссылка, а не копия.
func ApplyAttack(attacker Attacker, target domain.PlayerType) string {
	if target == nil {
		logger.Log.WithField("component", "combat_system").Warn("Attack failed: target is nil.")
		return "Атаковать некого."
	}

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":       "combat_system",
		"attacker_pos":    attacker.Position(),
		"target_pos":      target.Position(),
		"attack_strength": attacker.Strength(),
	})

	hpBefore := target.Life()
	attacker.Attack(target)
	hpAfter := target.Life()

	combatLogger.WithFields(logrus.Fields{
		"hp_before": hpBefore,
		"hp_after":  hpAfter,
	}).Info("Attack resolved.")

	msg := fmt.Sprintf("Атака из %v по %v: %d урона (%d -> %d).",
		attacker.Position(), target.Position(), hpBefore-hpAfter, hpBefore, hpAfter)

	// Смерти нет: жизнь просто уходит в минус
	if hpAfter <= 0 {
		msg += " Жизнь цели исчерпана."
	}
	return msg
}

// ApplyDamage уменьшает жизнь d на factor
func ApplyDamage(d domain.Destructable, factor int) {
	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"factor":    factor,
	}).Debug("Decreasing life.")

	d.DecreaseLife(factor)
}
