// Command nes6502trace drives the cpu/bus/cartridge core over a ROM
// image and prints a nestest-golden-log-compatible trace line per
// instruction. It wires together a Bus and a Chip the way a real NES
// frontend would, minus everything this core doesn't implement (PPU
// rendering, controller input, audio).
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"github.com/n-ulricksen/nes6502core/bus"
	"github.com/n-ulricksen/nes6502core/cartridge"
	"github.com/n-ulricksen/nes6502core/cpu"
)

func main() {
	app := &cli.App{
		Name:    "nes6502trace",
		Usage:   "Run a 6502 program and print a nestest-style execution trace",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to an iNES (.nes) or raw flat binary image",
			},
			&cli.StringFlag{
				Name:  "pc",
				Usage: "override the start PC instead of using the reset vector, e.g. C000",
			},
			&cli.IntFlag{
				Name:  "steps",
				Usage: "maximum instructions to execute",
				Value: 5000,
			},
		},
		Action: run,
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("a -rom path is required", 86)
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading rom: %v", err), 1)
	}

	cart, err := loadCartridge(data)
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading cartridge: %v", err), 1)
	}

	b := bus.New(cart)
	chip := cpu.New(b)

	if pc := c.String("pc"); pc != "" {
		addr, err := strconv.ParseUint(strings.TrimPrefix(pc, "$"), 16, 16)
		if err != nil {
			return cli.Exit(fmt.Sprintf("invalid -pc %q: %v", pc, err), 1)
		}
		chip.SetPC(uint16(addr))
	}

	steps := c.Int("steps")
	for i := 0; i < steps; i++ {
		fmt.Println(chip.Trace())
		chip.Step()
	}

	return nil
}

// loadCartridge accepts either a real iNES image (magic "NES\x1A") or a
// raw flat binary loaded at 0x8000 -- the latter covers standalone test
// programs like nestest's raw .bin variant that carry no header at all.
// A raw image is passed to NewNROM unchecked, so it must be 16KiB
// (mirrored into 0xC000) or 32KiB.
func loadCartridge(data []byte) (cartridge.Cartridge, error) {
	if len(data) >= 4 && string(data[:3]) == "NES" && data[3] == 0x1A {
		return cartridge.LoadINES(data)
	}
	return cartridge.NewNROM(data, nil), nil
}
