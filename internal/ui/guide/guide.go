// Package guide holds the static explanation of the Pomodoro Technique
// shown by both front ends.
package guide

import (
	"fmt"
	"strings"
)

// Title is the heading of the explanation.
const Title = "What is the Pomodoro Technique?"

// Summary introduces the technique.
const Summary = "The Pomodoro Technique is a time management method that splits " +
	"work into focused intervals called pomodoros, separated by short breaks. " +
	"A pomodoro is traditionally 25 minutes but can be adjusted to fit your needs."

// Steps lists the basic routine.
var Steps = []string{
	"Select a single task to focus on.",
	"Set the timer for 25-30 minutes and work continuously until it goes off.",
	"Take a productive 5 minute break: walk around, get a snack and relax.",
	"Repeat steps 2 and 3 for 4 rounds.",
	"Take a longer (20-30 minute) break.",
}

// ReadMoreURL points to a longer write-up.
const ReadMoreURL = "https://todolist.com/productivity-method/pomodoro-technique"

// Text renders the summary and numbered steps as plain text.
func Text() string {
	var builder strings.Builder
	builder.WriteString(Summary)
	builder.WriteString("\n\n")
	for index, step := range Steps {
		fmt.Fprintf(&builder, "%d. %s\n", index+1, step)
	}
	return strings.TrimRight(builder.String(), "\n")
}
