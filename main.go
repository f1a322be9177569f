// Package main implements calico8, a CHIP-8 emulator.
package main

import (
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"

	"calico8/pkg/chip8"
	"calico8/pkg/config"
	"calico8/pkg/emulator"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] == "help" {
		printUsage()
		return
	}

	logger := log.NewWithConfig(log.DefaultConfig())

	cfg, err := config.Parse(os.Args)
	if err != nil {
		logger.Fatal(err.Error())
	}

	program, err := os.ReadFile(cfg.ROMPath)
	if err != nil {
		logger.Fatal(fmt.Sprintf("reading %q: %v", cfg.ROMPath, err))
	}

	vm := chip8.New(cfg.SoundEnabled)
	if err := vm.LoadProgram(program); err != nil {
		logger.Fatal(err.Error())
	}

	emu, err := emulator.New(vm, cfg, logger)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if err := emu.Run(); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("usage: calico8 <rom-path or 'help'> [options]")
	fmt.Println("options:")
	fmt.Println("  -window_size:<w>:<h>  window width and height in pixels (default 640x320)")
	fmt.Println("  -clock_speed:<n>      instructions per second (default 600)")
	fmt.Println("  -no_sound             disable the beeper")
}
