// cmd/formfill/main.go
//
// Posts fake registrations to a running server, a share of them broken on
// purpose, and prints how the server answered.
//
//	go run ./cmd/formfill -n 50 -broken 0.3
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"reg-form/internal/services/registration"

	"github.com/brianvoe/gofakeit/v6"
)

const submitPath = "/api/v1/registration/submit"

// ----------------------------------------------------------------------------
// Config ---------------------------------------------------------------------
var (
	baseURL = flag.String("url", env("API_BASE_URL", "http://localhost:8080"), "Server base URL")
	count   = flag.Int("n", envInt("COUNT", 20), "How many forms to submit")
	broken  = flag.Float64("broken", 0.25, "Share of forms with one invalid field (0..1)")
	delay   = flag.Duration("delay", 0, "Pause between submissions, to stay under SUBMIT_RATE_PER_MIN")
	seed    = flag.Int64("seed", 0, "Faker seed, 0 picks a random one")
)

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

// ----------------------------------------------------------------------------
// Fake forms -----------------------------------------------------------------

// validForm returns a form every rule accepts.
func validForm(f *gofakeit.Faker) registration.Form {
	pass := f.Password(true, true, true, true, false, 12)
	return registration.Form{
		Name:            f.FirstName() + " " + f.LastName(),
		Email:           f.Email(),
		Phone:           f.Numerify("##########"),
		Password:        pass,
		ConfirmPassword: pass,
	}
}

// breakForm makes exactly one field fail, chosen at random.
func breakForm(f *gofakeit.Faker, form registration.Form) registration.Form {
	fields := registration.Fields()
	switch fields[f.Number(0, len(fields)-1)] {
	case registration.FieldName:
		form.Name = f.LetterN(2)
	case registration.FieldEmail:
		form.Email = f.Username() + ".example.com"
	case registration.FieldPhone:
		form.Phone = f.Numerify("#########")
	case registration.FieldPassword:
		form.Password = f.LetterN(5)
		form.ConfirmPassword = form.Password
	case registration.FieldConfirmPassword:
		form.ConfirmPassword = form.Password + "!"
	}
	return form
}

// ----------------------------------------------------------------------------
// Submission -----------------------------------------------------------------

type tally struct {
	Accepted   int
	Rejected   int
	Throttled  int
	Other      int
	Unexpected int // server disagreed with the local rules
}

func submit(ctx context.Context, client *http.Client, url string, form registration.Form) (int, error) {
	b, err := json.Marshal(form)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func run(ctx context.Context, client *http.Client, base string, n int, brokenShare float64, pause time.Duration, f *gofakeit.Faker) (tally, error) {
	var t tally
	url := base + submitPath

	for i := 1; i <= n; i++ {
		form := validForm(f)
		if f.Float64Range(0, 1) < brokenShare {
			form = breakForm(f, form)
		}
		wantValid := registration.Validate(form).Valid()

		status, err := submit(ctx, client, url, form)
		if err != nil {
			return t, fmt.Errorf("submit %d: %w", i, err)
		}

		switch status {
		case http.StatusCreated:
			t.Accepted++
			if !wantValid {
				t.Unexpected++
			}
		case http.StatusUnprocessableEntity:
			t.Rejected++
			if wantValid {
				t.Unexpected++
			}
		case http.StatusTooManyRequests:
			t.Throttled++
		default:
			t.Other++
		}

		if pause > 0 && i < n {
			select {
			case <-ctx.Done():
				return t, ctx.Err()
			case <-time.After(pause):
			}
		}
	}
	return t, nil
}

// ----------------------------------------------------------------------------
// Main -----------------------------------------------------------------------
func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	faker := gofakeit.New(s)

	fmt.Printf("Submitting %d forms to %s (broken share %.2f, seed %d)\n", *count, *baseURL, *broken, s)

	client := &http.Client{Timeout: 5 * time.Second}
	t, err := run(ctx, client, *baseURL, *count, *broken, *delay, faker)
	fmt.Printf("accepted=%d rejected=%d throttled=%d other=%d unexpected=%d\n",
		t.Accepted, t.Rejected, t.Throttled, t.Other, t.Unexpected)
	if err != nil {
		fmt.Fprintln(os.Stderr, "FATAL:", err)
		os.Exit(1)
	}
	if t.Unexpected > 0 {
		os.Exit(2)
	}
}
