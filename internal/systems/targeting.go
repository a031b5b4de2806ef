package systems

import (
	"protocol-playground/internal/domain"
)

// ValidationResult — результат проверки цели
type ValidationResult struct {
	Target  domain.PlayerType
	Valid   bool
	Message string // Сообщение об ошибке, если Valid == false
}

// ValidateTarget проверяет, находится ли target в окрестности attacker
// (по X в пределах Range, по Y на расстоянии не больше 1).
func ValidateTarget(attacker Attacker, target domain.PlayerType) ValidationResult {
	if target == nil {
		return ValidationResult{Valid: false, Message: "Цель не найдена."}
	}

	if !attacker.Position().Contains(target.Position(), attacker.Range()) {
		return ValidationResult{Valid: false, Message: "Цель слишком далеко."}
	}

	return ValidationResult{Target: target, Valid: true}
}

// TargetsInRange отбирает из candidates тех, кто попадает в окрестность attacker.
// Порядок candidates сохраняется; сам attacker пропускается.
func TargetsInRange(attacker Attacker, candidates []domain.PlayerType) []domain.PlayerType {
	var res []domain.PlayerType
	for _, c := range candidates {
		if c == nil || c == domain.PlayerType(attacker) {
			continue
		}
		if ValidateTarget(attacker, c).Valid {
			res = append(res, c)
		}
	}
	return res
}
