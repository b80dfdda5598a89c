// Command easyconfig inspects and reformats configuration files.
//
//	easyconfig fmt settings.ini
//	easyconfig groups settings.ini
//	easyconfig get settings.ini Video Width
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
