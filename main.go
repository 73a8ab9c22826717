package main

import "github.com/fadlytabrani/qkview-ihealth/cmd"

func main() {
	cmd.Execute()
}
