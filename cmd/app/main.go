// The app command is a line-oriented shell around the client: it wires
// the same config, storage, API clients, localization registry and
// navigation graph a mobile front end would, and drives them from stdin.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"parcel/internal/api"
	"parcel/internal/config"
	"parcel/internal/i18n"
	"parcel/internal/logging"
	"parcel/internal/nav"
	"parcel/internal/screen"
	"parcel/internal/storage"
)

type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   *storage.Store
	strings *i18n.Registry
	nav     *nav.Navigator

	auth    *screen.AuthController
	home    *screen.HomeController
	orders  *screen.OrdersController
	profile *screen.ProfileController
	wallet  *screen.WalletController
	booking *screen.BookingController
	support *screen.SupportController

	authClient     *api.AuthClient
	bookingClient  *api.BookingClient
	locationClient *api.LocationClient
	chatClient     *api.ChatClient
	supportClient  *api.SupportClient

	// Cancels the live tracking loop when the screen is left.
	stopTracking context.CancelFunc
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	store, err := storage.Open(cfg.App.StorageDir)
	if err != nil {
		logger.Fatal("failed to open local storage", zap.Error(err))
	}

	language := store.Language()
	if language == "" {
		language = cfg.App.DefaultLanguage
	}
	registry := i18n.NewRegistry(language)

	client := api.NewClient(api.Options{
		BaseURL:        cfg.API.BaseURL,
		ConnectTimeout: cfg.API.ConnectTimeout,
		RequestTimeout: cfg.API.RequestTimeout,
		Tokens:         store,
		Logger:         logger,
	})

	navigator := nav.NewNavigator(nav.InitialRoute(store.Token()), logger)

	a := &app{
		cfg:            cfg,
		logger:         logger,
		store:          store,
		strings:        registry,
		nav:            navigator,
		authClient:     api.NewAuthClient(client, store),
		bookingClient:  api.NewBookingClient(client),
		locationClient: api.NewLocationClient(client),
		chatClient:     api.NewChatClient(client),
		supportClient:  api.NewSupportClient(client),
	}
	a.auth = screen.NewAuthController(a.authClient, navigator, registry, logger)
	a.home = screen.NewHomeController(a.locationClient, navigator, registry, logger, cfg.Search.DebounceDelay)
	a.orders = screen.NewOrdersController(a.bookingClient, navigator, registry, logger)
	a.profile = screen.NewProfileController(api.NewUserClient(client), store, navigator, registry, logger)
	a.wallet = screen.NewWalletController(api.NewWalletClient(client), navigator, registry, logger)
	a.booking = screen.NewBookingController(a.bookingClient, api.NewPromoClient(client), navigator, registry, logger)
	a.support = screen.NewSupportController(a.supportClient, navigator, registry, logger)

	navigator.OnChange(a.routeChanged)
	registry.Subscribe(func(s *i18n.Strings) {
		fmt.Printf("-- language switched to %s --\n", s.Code)
	})

	a.render(navigator.Current())
	a.loop()
}

// routeChanged stops screen-scoped work when the route moves away.
func (a *app) routeChanged(r nav.Route) {
	if a.stopTracking != nil && r.Name() != nav.NameTrackingLive {
		a.stopTracking()
		a.stopTracking = nil
	}
	a.render(r)
}

func (a *app) render(r nav.Route) {
	s := a.strings.Current()
	fmt.Printf("\n[%s] ", r.Encode())
	switch r.Name() {
	case nav.NameSplash, nav.NameLogin:
		fmt.Println(s.LoginTitle, "- commands: login <email> | register <name> <email> | quit")
	case nav.NameRegister:
		fmt.Println(s.RegisterTitle)
	case nav.NameOTP:
		fmt.Println(s.OTPTitle, "- commands: otp <code> | resend | back")
	case nav.NameHome:
		fmt.Println(s.WhereTo, "- commands: search <text> | orders | wallet | profile | support | back | quit")
	case nav.NameOrders:
		fmt.Println("commands: open <bookingId> | back")
	case nav.NameBookingDetail:
		fmt.Println("commands: track | chat | cancel | invoice | back")
	case nav.NameTrackingLive:
		fmt.Println(s.TrackShipment, "- commands: back")
	case nav.NameWallet:
		fmt.Println(s.WalletTitle, "- commands: topup <amount> | txns | back")
	case nav.NameProfile:
		fmt.Println("commands: lang <code> | logout | back")
	case nav.NameChat:
		fmt.Println("commands: say <text> | log | back")
	case nav.NameSupport:
		fmt.Println(s.SupportTitle, "- commands: new <subject> | open <ticketId> | back")
	case nav.NameSupportTicket:
		fmt.Println("commands: reply <text> | close | back")
	default:
		fmt.Println("commands: back")
	}
}

func (a *app) loop() {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit":
			return
		case "back":
			if !a.nav.Back() {
				return
			}
		default:
			a.dispatch(ctx, cmd, args)
		}
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) {
	switch a.nav.Current().Name() {
	case nav.NameSplash, nav.NameLogin, nav.NameRegister:
		a.dispatchAuth(ctx, cmd, args)
	case nav.NameOTP:
		a.dispatchOTP(ctx, cmd, args)
	case nav.NameHome:
		a.dispatchHome(ctx, cmd, args)
	case nav.NameOrders:
		if cmd == "open" && len(args) == 1 {
			a.orders.Open(args[0])
		}
	case nav.NameBookingDetail:
		a.dispatchBooking(ctx, cmd)
	case nav.NameChat:
		a.dispatchChat(ctx, cmd, args)
	case nav.NameSupportTicket:
		a.dispatchTicket(ctx, cmd, args)
	case nav.NameWallet:
		a.dispatchWallet(ctx, cmd, args)
	case nav.NameProfile:
		a.dispatchProfile(ctx, cmd, args)
	case nav.NameSupport:
		a.dispatchSupport(ctx, cmd, args)
	default:
		fmt.Println("unknown command here:", cmd)
	}
}

func (a *app) dispatchAuth(ctx context.Context, cmd string, args []string) {
	switch {
	case cmd == "login" && len(args) == 1:
		if err := a.auth.SubmitLogin(ctx, args[0]); err != nil {
			fmt.Println("!", a.auth.ErrText)
		}
	case cmd == "register" && len(args) >= 2:
		name := strings.Join(args[:len(args)-1], " ")
		if err := a.auth.SubmitRegister(ctx, name, args[len(args)-1]); err != nil {
			fmt.Println("!", a.auth.ErrText)
		}
	}
}

func (a *app) dispatchOTP(ctx context.Context, cmd string, args []string) {
	route, ok := a.nav.Current().(nav.OTP)
	if !ok {
		return
	}
	otp := screen.NewOTPController(a.authClient, a.nav, a.strings, a.logger, route)
	switch {
	case cmd == "otp" && len(args) == 1:
		if err := otp.Verify(ctx, args[0]); err != nil {
			fmt.Println("!", otp.ErrText)
		}
	case cmd == "resend":
		if err := otp.Resend(ctx); err != nil {
			fmt.Println("!", otp.ErrText)
		}
	}
}

func (a *app) dispatchHome(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "search":
		a.home.QueryChanged(ctx, strings.Join(args, " "))
		// Let the debounce window and the request finish before
		// rendering; a touch UI would render reactively instead.
		time.Sleep(a.cfg.Search.DebounceDelay + 2*time.Second)
		for _, sug := range a.home.CurrentSuggestions() {
			fmt.Printf("  %s - %s\n", sug.Title, sug.Description)
		}
	case "orders":
		a.home.OpenOrders()
		if err := a.orders.Load(ctx, ""); err == nil {
			for _, b := range a.orders.Bookings {
				fmt.Printf("  %s %s -> %s [%s]\n", b.ID, b.Pickup.Label, b.Delivery.Label, b.Status)
			}
		}
	case "wallet":
		a.home.OpenWallet()
		if err := a.wallet.Refresh(ctx); err == nil {
			s := a.strings.Current()
			fmt.Println(" ", s.WalletBalance(a.wallet.Wallet.Balance, a.wallet.Wallet.Currency))
		}
	case "profile":
		a.home.OpenProfile()
		if err := a.profile.Load(ctx); err == nil {
			fmt.Printf("  %s <%s>\n", a.profile.User.Name, a.profile.User.Email)
		}
	case "support":
		a.home.OpenSupport()
		_ = a.support.Load(ctx, "")
	}
}

func (a *app) dispatchBooking(ctx context.Context, cmd string) {
	route, ok := a.nav.Current().(nav.BookingDetail)
	if !ok {
		return
	}
	if a.booking.Booking.ID != route.BookingID {
		if err := a.booking.Load(ctx, route.BookingID); err != nil {
			fmt.Println("!", a.booking.ErrText)
			return
		}
	}
	switch cmd {
	case "track":
		a.booking.Track()
		a.startTracking(route.BookingID)
	case "chat":
		a.booking.OpenChat()
	case "cancel":
		if err := a.booking.Cancel(ctx, "changed my mind"); err != nil {
			fmt.Println("!", a.booking.ErrText)
		}
	case "invoice":
		a.nav.Navigate(nav.Invoice{BookingID: route.BookingID})
	}
}

func (a *app) startTracking(bookingID string) {
	trackCtx, cancel := context.WithCancel(context.Background())
	a.stopTracking = cancel

	tracker := screen.NewTrackingController(
		a.bookingClient, a.locationClient, a.logger,
		a.cfg.Tracking.PollInterval, a.cfg.Tracking.MaxBackoff)

	go func() {
		_ = tracker.Run(trackCtx, bookingID)
	}()
	go func() {
		ticker := time.NewTicker(a.cfg.Tracking.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-trackCtx.Done():
				return
			case <-ticker.C:
				st := tracker.State()
				if st.Booking.ID != "" {
					fmt.Printf("  [%s] eta %dmin, %d trail points\n",
						st.Booking.Status, st.EtaMinutes, len(st.Trail))
				}
			}
		}
	}()
}

func (a *app) dispatchChat(ctx context.Context, cmd string, args []string) {
	route, ok := a.nav.Current().(nav.Chat)
	if !ok {
		return
	}
	chat := screen.NewChatController(a.chatClient, a.strings, a.logger, route.BookingID)
	switch {
	case cmd == "say" && len(args) > 0:
		if err := chat.Send(ctx, strings.Join(args, " ")); err != nil {
			fmt.Println("!", chat.ErrText)
		}
	case cmd == "log":
		if err := chat.Load(ctx); err != nil {
			fmt.Println("!", chat.ErrText)
			return
		}
		for _, m := range chat.Messages {
			fmt.Printf("  %s: %s\n", m.Sender, m.Text)
		}
	}
}

func (a *app) dispatchTicket(ctx context.Context, cmd string, args []string) {
	route, ok := a.nav.Current().(nav.SupportTicket)
	if !ok {
		return
	}
	ticket := screen.NewTicketController(a.supportClient, a.strings, a.logger, route.TicketID)
	switch {
	case cmd == "reply" && len(args) > 0:
		if err := ticket.Reply(ctx, strings.Join(args, " ")); err != nil {
			fmt.Println("!", ticket.ErrText)
		}
	case cmd == "close":
		if err := ticket.Close(ctx); err != nil {
			fmt.Println("!", ticket.ErrText)
		}
	}
}

func (a *app) dispatchWallet(ctx context.Context, cmd string, args []string) {
	switch {
	case cmd == "topup" && len(args) == 1:
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Println("! invalid amount")
			return
		}
		if err := a.wallet.TopUp(ctx, amount); err != nil {
			fmt.Println("!", a.wallet.ErrText)
			return
		}
		s := a.strings.Current()
		fmt.Println(" ", s.WalletBalance(a.wallet.Wallet.Balance, a.wallet.Wallet.Currency))
	case cmd == "txns":
		if err := a.wallet.LoadTransactions(ctx, 1, 20); err == nil {
			for _, t := range a.wallet.Transactions {
				fmt.Printf("  %s %s %.2f %s\n", t.CreatedAt.Format("2006-01-02"), t.Type, t.Amount, t.Description)
			}
		}
	}
}

func (a *app) dispatchProfile(ctx context.Context, cmd string, args []string) {
	switch {
	case cmd == "lang" && len(args) == 1:
		if err := a.profile.ChangeLanguage(ctx, args[0]); err != nil {
			fmt.Println("!", a.profile.ErrText)
		}
	case cmd == "logout":
		if err := a.profile.Logout(); err != nil {
			a.logger.Error("logout failed", zap.Error(err))
		}
	}
}

func (a *app) dispatchSupport(ctx context.Context, cmd string, args []string) {
	switch {
	case cmd == "new" && len(args) > 0:
		subject := strings.Join(args, " ")
		if err := a.support.Create(ctx, subject, "general", subject, ""); err != nil {
			fmt.Println("!", a.support.ErrText)
		}
	case cmd == "open" && len(args) == 1:
		a.support.Open(args[0])
	}
}
