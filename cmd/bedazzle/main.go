// Command bedazzle runs the shape, cart and race car demos.
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/go-leo/bedazzle"
	"github.com/go-leo/bedazzle/examples/cart"
	"github.com/go-leo/bedazzle/examples/racecar"
	"github.com/go-leo/bedazzle/examples/shape"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, bedazzle.NewComposer(bedazzle.Logger(logger)), cfg); err != nil {
		logger.Error("demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(w io.Writer, composer *bedazzle.Composer, cfg Config) error {
	if err := runShape(w, composer); err != nil {
		return fmt.Errorf("shape: %w", err)
	}
	if err := runCart(w, composer); err != nil {
		return fmt.Errorf("cart: %w", err)
	}
	if err := runRaceCar(w, composer, cfg); err != nil {
		return fmt.Errorf("race car: %w", err)
	}
	return nil
}

func runShape(w io.Writer, composer *bedazzle.Composer) error {
	rect, err := shape.NewRectangle(composer, 10, 5)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rect.Area())
	fmt.Fprintln(w, rect.Perimeter())
	fmt.Fprintln(w, rect.String())
	return nil
}

func runCart(w io.Writer, composer *bedazzle.Composer) error {
	c, err := cart.New(composer)
	if err != nil {
		return err
	}
	for _, step := range []func(cart.Cart) (cart.Cart, error){
		func(c cart.Cart) (cart.Cart, error) { return c.AddItem(cart.Item{Name: "Shirt", Price: 30}) },
		func(c cart.Cart) (cart.Cart, error) { return c.AddItem(cart.Item{Name: "Hat", Price: 20}) },
		func(c cart.Cart) (cart.Cart, error) { return c.ApplyDiscount(10) },
		func(c cart.Cart) (cart.Cart, error) { return c.CalculateTax(8) },
		func(c cart.Cart) (cart.Cart, error) { return c.SetShipping(5) },
	} {
		if c, err = step(c); err != nil {
			return err
		}
	}
	total, err := c.Total()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Subtotal:", c.Subtotal())
	fmt.Fprintln(w, "Discounts:", c.Discounts())
	fmt.Fprintf(w, "Tax: %.2f\n", c.Tax())
	fmt.Fprintln(w, "Shipping:", c.Shipping())
	fmt.Fprintf(w, "Total: %.2f\n", total)
	return nil
}

func runRaceCar(w io.Writer, composer *bedazzle.Composer, cfg Config) error {
	car, err := racecar.New(composer, racecar.Base())
	if err != nil {
		return err
	}
	if car, err = car.UpgradeTurbo(cfg.TurboLevel); err != nil {
		return err
	}
	if err := car.Summary(w); err != nil {
		return err
	}
	plan, err := car.PlanPitStops(cfg.Laps)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Pit strategy: %d laps, %d tire stops, %d fuel stops, %d stops\n",
		plan.Laps, plan.TireStops, plan.FuelStops, plan.TotalStops)
	lapTime, err := car.EstimateLapTime(racecar.Track{Length: cfg.TrackLength, Turns: cfg.TrackTurns})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Estimated lap time:", lapTime, "s")
	return nil
}
