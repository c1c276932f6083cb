package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/cryptofolio/api"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// readPassword prompts for a password without echoing it. It falls back to a
// plain line read when stdin is not a terminal (pipes, tests).
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		return string(b), err
	}
	var line string
	_, err := fmt.Fscanln(os.Stdin, &line)
	return line, err
}

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate against the backend and store the session" }
func (*loginCmd) Usage() string {
	return `cfo login -e <email> [-password <password>]

  Authenticates against the backend and stores the access token locally, so
  that subsequent commands run on your portfolio. When -password is omitted
  it is prompted for on the terminal.

Usage Examples:
$ cfo login -e jane@example.com
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email address of the account")
	f.StringVar(&c.password, "password", "", "Password (prompted when omitted)")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -e <email> is required")
		return subcommands.ExitUsageError
	}
	if c.password == "" {
		pw, err := readPassword("Password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		c.password = pw
	}

	store, _, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := store.Login(ctx, c.email, c.password); err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		return subcommands.ExitFailure
	}
	user, _ := store.Current()
	fmt.Printf("Logged in as %s <%s>\n", user.FullName(), user.Email)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	email     string
	password  string
	firstName string
	lastName  string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account and log in" }
func (*registerCmd) Usage() string {
	return `cfo register -e <email> -first <name> -last <name> [-password <password>]

  Creates a new account on the backend, then logs in with it.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "e", "", "Email address of the new account")
	f.StringVar(&c.password, "password", "", "Password (prompted when omitted)")
	f.StringVar(&c.firstName, "first", "", "First name")
	f.StringVar(&c.lastName, "last", "", "Last name")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.email == "" || c.firstName == "" || c.lastName == "" {
		fmt.Fprintln(os.Stderr, "Error: -e, -first and -last are required")
		return subcommands.ExitUsageError
	}
	if c.password == "" {
		pw, err := readPassword("Password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return subcommands.ExitFailure
		}
		c.password = pw
	}

	store, _, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	req := api.RegisterRequest{
		Email:     c.email,
		Password:  c.password,
		FirstName: c.firstName,
		LastName:  c.lastName,
	}
	if err := store.Register(ctx, req); err != nil {
		fmt.Fprintf(os.Stderr, "Registration failed: %v\n", err)
		return subcommands.ExitFailure
	}
	user, _ := store.Current()
	fmt.Printf("Welcome %s, you are now logged in.\n", user.FullName())
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "discard the stored session" }
func (*logoutCmd) Usage() string            { return "cfo logout\n" }
func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	store.Logout()
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string             { return "whoami" }
func (*whoamiCmd) Synopsis() string         { return "show the current session" }
func (*whoamiCmd) Usage() string            { return "cfo whoami\n" }
func (*whoamiCmd) SetFlags(f *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := OpenSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	user, ok := store.Current()
	if !ok {
		fmt.Println("Not logged in.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("%s <%s>\n", user.FullName(), user.Email)
	if exp, ok := store.TokenExpiry(); ok {
		if time.Now().After(exp) {
			fmt.Printf("Token expired %s.\n", exp.Format(time.RFC1123))
		} else {
			fmt.Printf("Token valid until %s.\n", exp.Format(time.RFC1123))
		}
	}
	return subcommands.ExitSuccess
}
