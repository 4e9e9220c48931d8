package main

import "github.com/bernatfelip/cuentas/cmd"

func main() {
	cmd.Execute()
}
