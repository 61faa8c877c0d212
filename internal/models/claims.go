package models

// Claims — name→value assertions extracted from a presented credential
type Claims map[string]string
