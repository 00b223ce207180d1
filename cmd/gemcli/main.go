// Gemcli is a small command-line interface to Gemini models via gemcore.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
