package cmd

const (
	ErrorBindingFlag = "unable to bind flag"
)
