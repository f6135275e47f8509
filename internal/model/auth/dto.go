package auth

import "time"

type Login struct {
	Email       string
	Password    string
	Fingerprint string
	At          time.Time
}

type Refresh struct {
	Token       string
	Fingerprint string
	At          time.Time
}
