package config_test

import (
	"fmt"

	"github.com/0xalexb/hjarta-cfg/config"
)

func ExampleDirectory_Load() {
	dir := config.NewDirectory("testdata", "default")

	cfg, err := dir.Load("", nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Println(cfg)

	cfg, err = dir.Load("overlap", nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Println(cfg)

	// Values from flags that were not set are nil and leave the files alone.
	cfg, err = dir.Load("overlap", map[string]any{"env.device": 0, "seed": nil})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Println(cfg)
	// Output:
	// map[env:map[device:-1] lr:0.01]
	// map[env:map[device:-1] lr:0.02]
	// map[env:map[device:0] lr:0.02]
}

func ExampleDirectory_Load_nestedName() {
	dir := config.NewDirectory("testdata", "default")

	// "experiments.adam" resolves to testdata/experiments/adam.yaml.
	cfg, err := dir.Load("experiments.adam", nil)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	name, _ := cfg.Get("optim.name")
	lr, _ := cfg.Get("lr")

	fmt.Printf("optimizer: %v, lr: %v\n", name, lr)
	// Output: optimizer: adam, lr: 0.001
}

func ExampleMerge() {
	target := map[string]any{
		"env": map[string]any{"device": -1, "name": "cuda"},
		"lr":  0.01,
	}

	result := config.Merge(target, map[string]any{
		"env.device": 0,
		"lr":         nil,
	})

	fmt.Println(result)
	// Output: map[env:map[device:0 name:cuda] lr:0.01]
}

func ExampleMap_Set() {
	cfg := config.New(map[string]any{
		"env": map[string]any{"device": -1},
	})

	err := cfg.Set("env.device", 2)
	fmt.Println(err, cfg)

	err = cfg.Set("optim.lr", 0.1)
	fmt.Println(err)
	// Output:
	// <nil> map[env:map[device:2]]
	// key not found: "optim"
}

func ExampleProvider() {
	type EnvConfig struct {
		Device int    `yaml:"device"`
		Name   string `yaml:"name"`
	}

	cfg := config.New(map[string]any{
		"env": map[string]any{"device": 1, "name": "cuda"},
	})

	env, err := config.Provider(&EnvConfig{}, "env")(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("device: %d, name: %s\n", env.Device, env.Name)
	// Output: device: 1, name: cuda
}
