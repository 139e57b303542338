//go:build rp2040

// Command pico-demo: Trill Bar bring-up for RP2040/Pico.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./services/touch/cmd/pico-demo
//
// Wiring assumptions:
// - I2C0 @ 400 kHz on Pico defaults: SDA=GP4, SCL=GP5.
// - Trill Bar at its default address 0x20.
package main

import (
	"context"
	"fmt"
	"time"

	"machine"

	"touchcode-go/drivers/trill"
	"touchcode-go/errcode"
	"touchcode-go/services/touch"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(3 * time.Second)
	fmt.Println("\n== Trill Bar demo ==")

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		fmt.Println("i2c configure:", err)
		return
	}

	dev, err := trill.NewBar(i2c, trill.AddressBar, trill.ModeCentroid)
	if err != nil {
		fmt.Println("trill:", err)
		return
	}
	fmt.Printf("%s fw=%d addr=%#x\n", dev.Type(), dev.FirmwareVersion(), dev.Address())

	p := touch.NewPoller(dev, touch.Config{Interval: 20 * time.Millisecond})
	p.Start(context.Background())

	for r := range p.Results() {
		if r.Code != errcode.OK {
			fmt.Println("read:", r.Code, r.Err)
			continue
		}
		if len(r.Frame.Vertical) == 0 {
			continue
		}
		for i, t := range r.Frame.Vertical {
			fmt.Printf("touch %d: loc=%d size=%d  ", i, t.Location, t.Size)
		}
		fmt.Println()
	}
}
