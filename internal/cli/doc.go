// Package cli runs single vault operations from command-line arguments, for
// scripting and for terminals where the interactive menu is unwanted.
//
// Supported commands:
//
//	list                 print every label
//	get <label>          print the value stored under label
//	put <label> [value]  store value (prompted without echo when omitted) and save
//	delete <label>       remove label and save
//
// The master password is read without echo when stdin is a terminal and as
// a single line otherwise.
package cli
