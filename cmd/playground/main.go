package main

import (
	"flag"
	"fmt"
	"time"

	"protocol-playground/internal/domain"
	"protocol-playground/internal/payroll"
	"protocol-playground/internal/people"
	"protocol-playground/internal/smoothie"
	"protocol-playground/internal/systems"
	"protocol-playground/internal/version"
	"protocol-playground/pkg/config"
	"protocol-playground/pkg/dice"
	"protocol-playground/pkg/logger"
)

// Config - параметры плейграунда из окружения
type Config struct {
	DiceSides int     `env:"PLAYGROUND_DICE_SIDES" envDefault:"6"`
	Rolls     int     `env:"PLAYGROUND_ROLLS" envDefault:"5"`
	LCGSeed   float64 `env:"PLAYGROUND_LCG_SEED" envDefault:"42"`
}

func init() {
	logger.Init()
}

func main() {
	// 1. Конфигурация: окружение, затем флаги поверх
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}

	var rolls int
	var seed float64
	flag.IntVar(&rolls, "rolls", 0, "Number of dice rolls (0 to use PLAYGROUND_ROLLS)")
	flag.Float64Var(&seed, "seed", 0, "LCG seed (0 to use PLAYGROUND_LCG_SEED)")
	flag.Parse()

	if rolls != 0 {
		cfg.Rolls = rolls
	}
	if seed != 0 {
		cfg.LCGSeed = seed
	}

	logger.Log.Info("Starting protocol playground...")
	logger.Log.Info(version.String())

	// 2. Printable / FullyNameable
	user := people.User{Name: "James", Age: 33, Address: "an Address"}
	fmt.Println(user.PrettyDescription())
	for _, name := range people.FullNames(
		people.Account{Name: "Joe Blow"},
		people.Friend{FirstName: "John", MiddleName: "Jacob", LastName: "Adams"},
	) {
		fmt.Println(name)
	}

	// 3. Payable
	hourly := payroll.NewHourlyEmployee("james", "none", time.Now(), payroll.EmployeeNotManager)
	paycheck := payroll.PayEmployee(hourly)
	fmt.Printf("paycheck: %+v\n", paycheck)

	// 4. Blendable
	ingredients := []smoothie.Blendable{
		smoothie.NewFruit("Strawberry"),
		smoothie.NewMilk("Chocolate"),
	}
	for _, sound := range smoothie.MakeSmoothie(ingredients) {
		fmt.Println(sound)
	}

	// 5. RandomNumberGenerator как стратегия
	d6, err := dice.NewDice(cfg.DiceSides, dice.NewLinearCongruentialGenerator(cfg.LCGSeed))
	if err != nil {
		logger.Log.Fatal("Failed to create dice: ", err)
	}
	fmt.Printf("d%d rolls: %v\n", d6.Sides(), d6.RollN(cfg.Rolls))

	// 6. Враги
	runEncounter()

	logger.Log.Info("Done.")
}

func runEncounter() {
	a := domain.NewEnemy(domain.Position{X: 0, Y: 0})
	b := domain.NewEnemy(domain.Position{X: 4, Y: 0})

	systems.ApplyPath(a, []domain.Direction{domain.DirectionRight, domain.DirectionRight, domain.DirectionUp})
	fmt.Printf("enemy A moved to %v\n", a.Position())

	if res := systems.ValidateTarget(a, b); res.Valid {
		fmt.Println(systems.ApplyAttack(a, res.Target))
	} else {
		fmt.Println(res.Message)
	}

	systems.ApplyDamage(a, 3)
	fmt.Printf("enemy A life: %d, enemy B life: %d\n", a.Life(), b.Life())

	points, err := a.PointsAroundMe()
	if err != nil {
		logger.Log.Error("Neighborhood failed: ", err)
		return
	}
	fmt.Printf("enemy A sees %d cells around %v\n", len(points), a.Position())
}
