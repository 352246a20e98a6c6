// scripts/oauth-check/main.go
//
// Run this locally to verify the configured Google OAuth client end to end:
// it walks the same consent + exchange flow the backend performs, then
// creates a throwaway event in the configured calendar.
//
// Usage:
//   GOOGLE_CLIENT_ID=... GOOGLE_CLIENT_SECRET=... GOOGLE_REDIRECT_URI=... \
//     go run scripts/oauth-check/main.go
//
// Paste the authorization code shown on the consent redirect when prompted.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"

	"examprep-backend/pkg/gcalendar"
)

func main() {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURI := os.Getenv("GOOGLE_REDIRECT_URI")
	if clientID == "" || clientSecret == "" || redirectURI == "" {
		log.Fatal("GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URI are required")
	}

	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	authURL := cfg.AuthCodeURL("oauth-check", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("Step 1: open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	fmt.Println("Token exchange OK.")

	client, err := gcalendar.NewClientFromToken(ctx, cfg, tok)
	if err != nil {
		log.Fatalf("Failed to build calendar client: %v", err)
	}

	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	ev, err := client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:       "ExamPrep OAuth check",
		Description:   "Throwaway event created by scripts/oauth-check. Safe to delete.",
		StartDateTime: start.Format("2006-01-02T15:04:05"),
		EndDateTime:   start.Add(30 * time.Minute).Format("2006-01-02T15:04:05"),
		Timezone:      "UTC",
	})
	if err != nil {
		log.Fatalf("Failed to create test event: %v", err)
	}

	fmt.Println()
	fmt.Printf("Test event created: %s\n", ev.HtmlLink)
	fmt.Println("The OAuth client works. You can delete the event from the calendar.")
}
