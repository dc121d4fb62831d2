// regctl is a small operator client for the account registry server.
//
// Usage:
//
//	regctl -addr http://localhost:8000 save
//	regctl -addr http://localhost:8000 load
//	regctl -addr http://localhost:8000 debug
//	regctl -addr http://localhost:8000 seed 100
//	regctl -addr http://localhost:8000 lookup <username>
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/account-registry/models"
	"github.com/go-resty/resty/v2"
)

func main() {
	addr := flag.String("addr", "http://localhost:8000", "base URL of the registry server")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(*addr, "/")).
		SetTimeout(*timeout)

	if err := run(cli, args); err != nil {
		fmt.Fprintln(os.Stderr, "regctl:", err)
		os.Exit(1)
	}
}

func run(cli *resty.Client, args []string) error {
	switch cmd := args[0]; cmd {
	case "save", "load":
		return opsRequest(cli, "/"+cmd)
	case "debug":
		return debugDump(cli)
	case "seed":
		if len(args) != 2 {
			return fmt.Errorf("usage: regctl seed <count>")
		}
		return seed(cli, args[1])
	case "lookup":
		if len(args) != 2 {
			return fmt.Errorf("usage: regctl lookup <username>")
		}
		return lookup(cli, args[1])
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func opsRequest(cli *resty.Client, path string) error {
	resp, err := cli.R().Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: server returned %s: %s", path, resp.Status(), resp.String())
	}

	fmt.Println(resp.String())
	return nil
}

func debugDump(cli *resty.Client) error {
	resp, err := cli.R().Get("/debug")
	if err != nil {
		return fmt.Errorf("debug request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("debug: server returned %s", resp.Status())
	}

	fmt.Println(resp.String())
	return nil
}

func seed(cli *resty.Client, count string) error {
	if _, err := strconv.Atoi(count); err != nil {
		return fmt.Errorf("seed count must be a number, got %q", count)
	}

	resp, err := cli.R().Get("/generate_users/" + count)
	if err != nil {
		return fmt.Errorf("seed request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("seed: server returned %s: %s", resp.Status(), resp.String())
	}

	fmt.Println(resp.String())
	return nil
}

func lookup(cli *resty.Client, username string) error {
	var userID uint32
	resp, err := cli.R().
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginInformation{Username: username}).
		SetResult(&userID).
		Post("/lookup_username")
	if err != nil {
		return fmt.Errorf("lookup request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("lookup: server returned %s: %s", resp.Status(), resp.String())
	}

	fmt.Println(userID)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: regctl [-addr URL] [-timeout DUR] <save|load|debug|seed N|lookup USERNAME>")
}
