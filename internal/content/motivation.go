package content

import "math/rand/v2"

// motivationalMessages is the fixed pool picked from by Motivation.
var motivationalMessages = [...]string{
	"You're doing great! Keep it up!",
	"Don't give up today! Every step counts.",
	"Your body thanks you for every healthy choice.",
	"Believe in yourself. You can do it!",
	"Small daily progress leads to big results.",
	"You are stronger than you think!",
	"Stay focused on your goal.",
	"Every day is a new opportunity.",
	"Your health is your greatest treasure.",
	"Consistency is the key to success!",
}

// Motivation returns one message picked uniformly at random from the pool.
// It draws from the process-wide random source; there is no seeding contract.
func Motivation() string {
	return motivationalMessages[rand.IntN(len(motivationalMessages))]
}
