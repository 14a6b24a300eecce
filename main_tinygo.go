//go:build tinygo

package main

import (
	"bitcube/app"
	"bitcube/hal"
)

func main() {
	app.Run(hal.New())
}
