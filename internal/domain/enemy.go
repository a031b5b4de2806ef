package domain

// Начальные характеристики врага
const (
	EnemyInitialLife     = 10
	EnemyInitialStrength = 5
	EnemyInitialRange    = 2
)

var (
	_ PlayerType   = (*Enemy)(nil)
	_ Movable      = (*Enemy)(nil)
	_ Destructable = (*Enemy)(nil)
	_ Attackable   = (*Enemy)(nil)

	_ PlayerFactory = NewEnemyPlayer
)

// Enemy - враг: реализует все четыре способности сразу.
// Состояния "мертв" нет: жизнь может уйти в минус без последствий.
type Enemy struct {
	pos      Position
	life     int
	strength int
	rng      int
}

// NewEnemy создает врага в точке p со стартовыми характеристиками
func NewEnemy(p Position) *Enemy {
	return &Enemy{
		pos:      p,
		life:     EnemyInitialLife,
		strength: EnemyInitialStrength,
		rng:      EnemyInitialRange,
	}
}

// NewEnemyPlayer - NewEnemy в форме PlayerFactory
func NewEnemyPlayer(p Position) PlayerType {
	return NewEnemy(p)
}

func (e *Enemy) Position() Position     { return e.pos }
func (e *Enemy) SetPosition(p Position) { e.pos = p }
func (e *Enemy) Life() int              { return e.life }
func (e *Enemy) SetLife(life int)       { e.life = life }
func (e *Enemy) Strength() int          { return e.strength }
func (e *Enemy) Range() int             { return e.rng }

// DecreaseLife вычитает factor из жизни без нижней границы.
// Отрицательный factor увеличивает жизнь.
func (e *Enemy) DecreaseLife(factor int) {
	e.life -= factor
}

// Attack уменьшает жизнь цели на силу врага.
// Цель передается интерфейсом над указателем, поэтому урон виден вызывающему.
func (e *Enemy) Attack(target PlayerType) {
	if target == nil {
		return
	}
	target.SetLife(target.Life() - e.strength)
}

// Move сдвигает врага ровно на одну клетку.
// distance принимается, но не используется: шаг всегда единичный.
func (e *Enemy) Move(dir Direction, distance int) {
	_ = distance
	dx, dy := dir.Delta()
	e.pos = e.pos.Shift(dx, dy)
}

// PointsAroundMe возвращает окрестность врага в пределах его дальности атаки
func (e *Enemy) PointsAroundMe() ([]Position, error) {
	return e.pos.Neighborhood(e.rng)
}
