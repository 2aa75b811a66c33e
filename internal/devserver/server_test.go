package devserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"parcel/internal/api"
	"parcel/internal/devserver"
	"parcel/internal/model"
)

// memorySession keeps the session token in memory for tests.
type memorySession struct {
	token    string
	language string
}

func (m *memorySession) Token() string                 { return m.token }
func (m *memorySession) SetToken(token string) error   { m.token = token; return nil }
func (m *memorySession) SetLanguage(code string) error { m.language = code; return nil }

type fixture struct {
	srv     *httptest.Server
	session *memorySession
	client  *api.Client
}

func newFixture(t *testing.T, stepEvery time.Duration) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(devserver.New(devserver.Options{StatusStepEvery: stepEvery}).Router())
	t.Cleanup(srv.Close)

	session := &memorySession{}
	client := api.NewClient(api.Options{BaseURL: srv.URL + "/api", Tokens: session})
	return &fixture{srv: srv, session: session, client: client}
}

func (f *fixture) login(t *testing.T, email string) {
	t.Helper()
	ctx := context.Background()
	auth := api.NewAuthClient(f.client, f.session)

	if _, err := auth.SendOTP(ctx, email, "login"); err != nil {
		t.Fatalf("failed to send OTP: %v", err)
	}
	if _, err := auth.VerifyOTP(ctx, email, "123456", "login", ""); err != nil {
		t.Fatalf("failed to verify OTP: %v", err)
	}
	if f.session.token == "" {
		t.Fatal("expected a session token after verification")
	}
}

func TestDevserver_RejectsUnauthenticatedRequests(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	_, err := api.NewUserClient(f.client).Profile(context.Background())

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T (%v)", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", apiErr.Status)
	}
}

func TestDevserver_AuthAndProfile(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")
	ctx := context.Background()

	users := api.NewUserClient(f.client)
	profile, err := users.Profile(ctx)
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	if profile.Email != "asha@example.com" {
		t.Errorf("expected the login email, got %q", profile.Email)
	}

	updated, err := users.UpdateProfile(ctx, "Asha Rao", profile.Email, "9900112233")
	if err != nil {
		t.Fatalf("failed to update profile: %v", err)
	}
	if updated.Name != "Asha Rao" || updated.Phone != "9900112233" {
		t.Errorf("unexpected updated profile: %+v", updated)
	}
}

func TestDevserver_AddressCRUD(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")
	ctx := context.Background()
	addresses := api.NewAddressClient(f.client)

	created, err := addresses.Create(ctx, model.Address{
		Label:       "Home",
		AddressLine: "12 MG Road",
		Lat:         12.9716,
		Lng:         77.5946,
		Category:    model.AddressCategoryHome,
	})
	if err != nil {
		t.Fatalf("failed to create address: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected the server to assign an ID")
	}

	list, err := addresses.List(ctx)
	if err != nil {
		t.Fatalf("failed to list addresses: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 address, got %d", len(list))
	}

	created.Landmark = "Opposite the park"
	if _, err := addresses.Update(ctx, created); err != nil {
		t.Fatalf("failed to update address: %v", err)
	}

	if err := addresses.Delete(ctx, created.ID); err != nil {
		t.Fatalf("failed to delete address: %v", err)
	}
	list, err = addresses.List(ctx)
	if err != nil {
		t.Fatalf("failed to list addresses: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected no addresses after delete, got %d", len(list))
	}
}

func TestDevserver_BookingLifecycle(t *testing.T) {
	t.Parallel()

	f := newFixture(t, 20*time.Millisecond)
	f.login(t, "asha@example.com")
	ctx := context.Background()
	bookings := api.NewBookingClient(f.client)

	created, err := bookings.Create(ctx, api.CreateBookingRequest{
		Pickup:        model.Address{Label: "Home", Lat: 12.9716, Lng: 77.5946},
		Delivery:      model.Address{Label: "Office", Lat: 12.9352, Lng: 77.6245},
		VehicleType:   "bike",
		PaymentMethod: model.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	if created.Status != model.BookingStatusPending {
		t.Errorf("expected a pending booking, got %s", created.Status)
	}
	if created.Price <= 0 {
		t.Errorf("expected a positive fare, got %v", created.Price)
	}

	list, err := bookings.List(ctx, "")
	if err != nil {
		t.Fatalf("failed to list bookings: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("expected the created booking in the list, got %+v", list)
	}

	// The scripted progression walks the booking to delivered; a driver
	// appears once one is assigned.
	deadline := time.Now().Add(3 * time.Second)
	var last model.Booking
	for time.Now().Before(deadline) {
		last, err = bookings.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get booking: %v", err)
		}
		if last.Status == model.BookingStatusDelivered {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if last.Status != model.BookingStatusDelivered {
		t.Fatalf("expected the booking to reach DELIVERED, stuck at %s", last.Status)
	}
	if last.Driver == nil || last.Driver.DeviceID == "" {
		t.Errorf("expected an assigned driver with a device, got %+v", last.Driver)
	}

	// A delivered booking can no longer be cancelled.
	err = bookings.Cancel(ctx, created.ID, "too late")
	if err == nil || !strings.Contains(err.Error(), "no longer") {
		t.Errorf("expected a cancellation conflict, got %v", err)
	}
}

func TestDevserver_CancelWhilePending(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")
	ctx := context.Background()
	bookings := api.NewBookingClient(f.client)

	created, err := bookings.Create(ctx, api.CreateBookingRequest{
		Pickup:   model.Address{Label: "A", Lat: 12.97, Lng: 77.59},
		Delivery: model.Address{Label: "B", Lat: 12.93, Lng: 77.62},
	})
	if err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}

	if err := bookings.Cancel(ctx, created.ID, "changed my mind"); err != nil {
		t.Fatalf("failed to cancel a pending booking: %v", err)
	}

	got, err := bookings.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to get booking: %v", err)
	}
	if got.Status != model.BookingStatusCancelled {
		t.Errorf("expected CANCELLED, got %s", got.Status)
	}
}

func TestDevserver_WalletFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")
	ctx := context.Background()
	wallet := api.NewWalletClient(f.client)

	after, err := wallet.TopUp(ctx, 500)
	if err != nil {
		t.Fatalf("failed to top up: %v", err)
	}
	if after.Balance != 500 {
		t.Errorf("expected balance 500, got %v", after.Balance)
	}

	after, err = wallet.Pay(ctx, "bk-1", 120)
	if err != nil {
		t.Fatalf("failed to pay: %v", err)
	}
	if after.Balance != 380 {
		t.Errorf("expected balance 380, got %v", after.Balance)
	}

	if _, err := wallet.Pay(ctx, "bk-2", 10000); err == nil {
		t.Error("expected an insufficient balance error")
	}

	page, err := wallet.Transactions(ctx, 1, 20)
	if err != nil {
		t.Fatalf("failed to load transactions: %v", err)
	}
	if len(page.Transactions) != 2 {
		t.Errorf("expected 2 ledger entries, got %d", len(page.Transactions))
	}
}

func TestDevserver_ChatThread(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")
	ctx := context.Background()
	chat := api.NewChatClient(f.client)

	replies, err := chat.QuickReplies(ctx)
	if err != nil {
		t.Fatalf("failed to load quick replies: %v", err)
	}
	if len(replies) == 0 {
		t.Error("expected canned quick replies")
	}

	sent, err := chat.Send(ctx, "bk-1", "I'm at the gate")
	if err != nil {
		t.Fatalf("failed to send: %v", err)
	}
	if sent.Sender != "customer" {
		t.Errorf("expected sender customer, got %q", sent.Sender)
	}

	thread, err := chat.Messages(ctx, "bk-1")
	if err != nil {
		t.Fatalf("failed to load thread: %v", err)
	}
	if len(thread) != 1 || thread[0].Text != "I'm at the gate" {
		t.Errorf("unexpected thread: %+v", thread)
	}
}

func TestDevserver_SupportTicketThread(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")
	ctx := context.Background()
	support := api.NewSupportClient(f.client)

	ticket, err := support.CreateTicket(ctx, api.CreateTicketRequest{
		Subject:  "Damaged parcel",
		Category: "delivery",
		Message:  "The box arrived crushed",
	})
	if err != nil {
		t.Fatalf("failed to create ticket: %v", err)
	}
	if ticket.Status != model.TicketStatusOpen {
		t.Errorf("expected an open ticket, got %s", ticket.Status)
	}

	if _, err := support.Reply(ctx, ticket.ID, "Any update?"); err != nil {
		t.Fatalf("failed to reply: %v", err)
	}

	got, err := support.GetTicket(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("failed to get ticket: %v", err)
	}
	if len(got.Messages) < 2 {
		t.Errorf("expected the reply appended, got %d messages", len(got.Messages))
	}

	if err := support.CloseTicket(ctx, ticket.ID); err != nil {
		t.Fatalf("failed to close ticket: %v", err)
	}
	got, err = support.GetTicket(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("failed to get ticket: %v", err)
	}
	if got.Status != model.TicketStatusClosed {
		t.Errorf("expected a closed ticket, got %s", got.Status)
	}
}

func TestDevserver_IdempotentBookingCreate(t *testing.T) {
	t.Parallel()

	f := newFixture(t, time.Minute)
	f.login(t, "asha@example.com")

	body := `{"pickup":{"label":"A","lat":12.97,"lng":77.59},"delivery":{"label":"B","lat":12.93,"lng":77.62}}`
	post := func() string {
		req, err := http.NewRequest(http.MethodPost, f.srv.URL+"/api/bookings", strings.NewReader(body))
		if err != nil {
			t.Fatalf("failed to build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+f.session.token)
		req.Header.Set("Idempotency-Key", "retry-1")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)

		var env struct {
			Data model.Booking `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err != nil {
			t.Fatalf("failed to decode response %s: %v", raw, err)
		}
		return env.Data.ID
	}

	first := post()
	second := post()
	if first == "" || first != second {
		t.Errorf("expected the retried create to replay the same booking, got %q then %q", first, second)
	}
}
