/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/minutes-api/cmd"

// @title           Minutes API
// @version         1.0.0
// @description     Meeting transcription API: upload audio, transcribe it with Gemini, edit speakers and text, and generate summaries, keywords and action items
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/minutes-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
