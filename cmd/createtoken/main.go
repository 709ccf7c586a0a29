package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"alyf.de/workingtime/security"
)

func main() {
	email := flag.String("email", "", "login email to embed in the token")
	name := flag.String("name", "", "unique name, defaults to the email")
	expires := flag.Int64("expires", 3600, "token lifetime in seconds")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}
	if *name == "" {
		*name = *email
	}

	secret := os.Getenv("WORKINGTIME_SIGNING_SECRET")
	if secret == "" {
		log.Fatal("WORKINGTIME_SIGNING_SECRET is not set")
	}

	token, err := security.CreateIdentityToken(&security.UserIdentity{
		UserName: *name,
		Email:    *email,
		Provider: "local",
	}, secret, *expires)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
