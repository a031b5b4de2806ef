package domain

// --- СПОСОБНОСТИ ---
// Каждая способность - отдельный контракт. Сущность реализует любой их набор.

// PlayerType - сущность, у которой есть позиция и жизнь.
// Реализации должны быть указателями: изменения видны всем держателям ссылки.
type PlayerType interface {
	Position() Position
	SetPosition(p Position)
	Life() int
	SetLife(life int)
}

// PlayerFactory создает сущность в начальной точке
type PlayerFactory func(p Position) PlayerType

// Movable - сущность умеет перемещаться
type Movable interface {
	Move(dir Direction, distance int)
}

// Destructable - сущность может терять жизнь
type Destructable interface {
	DecreaseLife(factor int)
}

// Attackable - сущность умеет атаковать
type Attackable interface {
	Strength() int
	Range() int
	Attack(target PlayerType)
}
