package devserver

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parcel/internal/model"
)

// ---- auth ----

func (s *Server) sendOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Mode  string `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	s.store.mu.Lock()
	acc := s.store.ensureAccount(req.Email)
	acc.otp = fixedOTP
	s.store.mu.Unlock()

	respond(c, model.OTPResult{Email: req.Email, ExpiresIn: 300})
}

func (s *Server) verifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
		Mode  string `json:"mode"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	acc, ok := s.store.accounts[req.Email]
	if !ok || acc.otp == "" || acc.otp != req.OTP {
		respondError(c, http.StatusUnauthorized, "Invalid or expired OTP")
		return
	}
	acc.otp = ""
	if req.Mode == "signup" && req.Name != "" {
		acc.user.Name = req.Name
	}
	token := uuid.New().String()
	acc.token = token
	s.store.tokens[token] = req.Email

	respond(c, model.AuthResult{Token: token, User: acc.user})
}

// ---- user ----

func (s *Server) getProfile(c *gin.Context) {
	respond(c, currentAccount(c).user)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	acc := currentAccount(c)
	s.store.mu.Lock()
	if req.Name != "" {
		acc.user.Name = req.Name
	}
	if req.Phone != "" {
		acc.user.Phone = req.Phone
	}
	if req.Language != "" {
		acc.user.Language = req.Language
	}
	user := acc.user
	s.store.mu.Unlock()

	respond(c, user)
}

// ---- addresses ----

func (s *Server) listAddresses(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]model.Address, 0, len(s.store.addresses))
	for _, a := range s.store.addresses {
		out = append(out, a)
	}
	respond(c, out)
}

func (s *Server) createAddress(c *gin.Context) {
	var addr model.Address
	if err := c.ShouldBindJSON(&addr); err != nil || addr.Label == "" {
		respondError(c, http.StatusBadRequest, "Label is required")
		return
	}
	addr.ID = uuid.New().String()

	s.store.mu.Lock()
	s.store.addresses[addr.ID] = addr
	s.store.mu.Unlock()

	respond(c, addr)
}

func (s *Server) updateAddress(c *gin.Context) {
	id := c.Param("id")
	var addr model.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.addresses[id]; !ok {
		respondError(c, http.StatusNotFound, "Address not found")
		return
	}
	addr.ID = id
	s.store.addresses[id] = addr
	respond(c, addr)
}

func (s *Server) deleteAddress(c *gin.Context) {
	id := c.Param("id")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.addresses[id]; !ok {
		respondError(c, http.StatusNotFound, "Address not found")
		return
	}
	delete(s.store.addresses, id)
	respondNull(c)
}

// ---- bookings ----

func (s *Server) createBooking(c *gin.Context) {
	var req struct {
		Pickup        model.Address       `json:"pickup"`
		Delivery      model.Address       `json:"delivery"`
		VehicleType   string              `json:"vehicleType"`
		PaymentMethod model.PaymentMethod `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	booking := model.Booking{
		ID:            uuid.New().String(),
		Pickup:        req.Pickup,
		Delivery:      req.Delivery,
		VehicleType:   req.VehicleType,
		PaymentMethod: req.PaymentMethod,
		Price:         price(req.Pickup, req.Delivery),
		Status:        model.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	s.store.mu.Lock()
	s.store.bookings[booking.ID] = &storedBooking{booking: booking, createdAt: booking.CreatedAt}
	s.store.mu.Unlock()

	respond(c, booking)
}

// price is a flat-plus-distance fare, enough for the stub.
func price(from, to model.Address) float64 {
	km := haversineKm(from.Lat, from.Lng, to.Lat, to.Lng)
	return math.Round((40+12*km)*100) / 100
}

func (s *Server) listBookings(c *gin.Context) {
	filter := model.BookingStatus(c.Query("status"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]model.Booking, 0, len(s.store.bookings))
	for _, b := range s.store.bookings {
		snap := s.store.snapshot(b)
		if filter != "" && snap.Status != filter {
			continue
		}
		out = append(out, snap)
	}
	respond(c, out)
}

func (s *Server) getBooking(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	b, ok := s.store.bookings[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Booking not found")
		return
	}
	respond(c, s.store.snapshot(b))
}

func (s *Server) verifyDelivery(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		respondError(c, http.StatusBadRequest, "Code is required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	b, ok := s.store.bookings[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Booking not found")
		return
	}
	b.delivered = true
	respond(c, s.store.snapshot(b))
}

func (s *Server) cancelBooking(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	b, ok := s.store.bookings[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Booking not found")
		return
	}
	status := b.currentStatus(s.store.stepEvery)
	if !status.Cancellable() {
		respondError(c, http.StatusConflict, "Booking can no longer be cancelled")
		return
	}
	b.cancelled = true
	respondNull(c)
}

func (s *Server) bookingETA(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	b, ok := s.store.bookings[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Booking not found")
		return
	}
	snap := s.store.snapshot(b)
	respond(c, model.ETAResult{
		EtaMinutes: snap.EtaMinutes,
		DistanceKm: haversineKm(snap.Pickup.Lat, snap.Pickup.Lng, snap.Delivery.Lat, snap.Delivery.Lng),
	})
}

// ---- chat ----

// chatThread serves both GET /chat/:bookingId and the static quick
// replies: gin cannot register /chat/quick-messages next to the
// wildcard, so the magic segment is handled here.
func (s *Server) chatThread(c *gin.Context) {
	id := c.Param("bookingId")
	if id == "quick-messages" {
		respond(c, []string{
			"I'm at the pickup point",
			"Please call me",
			"Leave it at the door",
			"Running 5 minutes late",
		})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	respond(c, append([]model.ChatMessage(nil), s.store.chats[id]...))
}

func (s *Server) sendChat(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		respondError(c, http.StatusBadRequest, "Text is required")
		return
	}

	id := c.Param("bookingId")
	msg := model.ChatMessage{
		ID:        uuid.New().String(),
		BookingID: id,
		Sender:    "customer",
		Text:      req.Text,
		Read:      true,
		CreatedAt: time.Now(),
	}

	s.store.mu.Lock()
	s.store.chats[id] = append(s.store.chats[id], msg)
	s.store.mu.Unlock()

	respond(c, msg)
}

func (s *Server) chatUnread(c *gin.Context) {
	id := c.Param("bookingId")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	count := 0
	for _, m := range s.store.chats[id] {
		if m.Sender == "driver" && !m.Read {
			count++
		}
	}
	respond(c, model.UnreadCount{Count: count})
}

// ---- invoices ----

func (s *Server) generateInvoice(c *gin.Context) {
	id := c.Param("bookingId")

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if inv, ok := s.store.invoices[id]; ok {
		respond(c, inv)
		return
	}
	b, ok := s.store.bookings[id]
	if !ok {
		respondError(c, http.StatusNotFound, "Booking not found")
		return
	}

	fare := b.booking.Price
	tax := math.Round(fare*0.18*100) / 100
	inv := model.Invoice{
		ID:        uuid.New().String(),
		BookingID: id,
		Number:    fmt.Sprintf("INV-%d", len(s.store.invoices)+1001),
		Lines: []model.InvoiceLine{
			{Label: "Delivery fare", Amount: fare},
			{Label: "GST (18%)", Amount: tax},
		},
		Subtotal:  fare,
		Tax:       tax,
		Total:     fare + tax,
		CreatedAt: time.Now(),
	}
	s.store.invoices[id] = inv
	respond(c, inv)
}

func (s *Server) getInvoice(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	inv, ok := s.store.invoices[c.Param("bookingId")]
	if !ok {
		respondError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	respond(c, inv)
}

func (s *Server) listInvoices(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]model.Invoice, 0, len(s.store.invoices))
	for _, inv := range s.store.invoices {
		out = append(out, inv)
	}
	respond(c, out)
}

// ---- ratings ----

func (s *Server) submitRating(c *gin.Context) {
	var req struct {
		Stars   int    `json:"stars"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Stars < 1 || req.Stars > 5 {
		respondError(c, http.StatusBadRequest, "Stars must be between 1 and 5")
		return
	}

	id := c.Param("bookingId")
	rating := model.Rating{
		BookingID: id,
		Stars:     req.Stars,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	s.store.mu.Lock()
	s.store.ratings[id] = rating
	s.store.mu.Unlock()

	respond(c, rating)
}

func (s *Server) getRating(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if rating, ok := s.store.ratings[c.Param("bookingId")]; ok {
		respond(c, rating)
		return
	}
	respondNull(c)
}

// ---- support ----

func (s *Server) createTicket(c *gin.Context) {
	var req struct {
		Subject   string `json:"subject"`
		Category  string `json:"category"`
		Message   string `json:"message"`
		BookingID string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Subject == "" {
		respondError(c, http.StatusBadRequest, "Subject is required")
		return
	}

	ticket := &model.SupportTicket{
		ID:        uuid.New().String(),
		Subject:   req.Subject,
		Category:  req.Category,
		Status:    model.TicketStatusOpen,
		BookingID: req.BookingID,
		Messages: []model.TicketMessage{{
			ID:        uuid.New().String(),
			Sender:    "customer",
			Text:      req.Message,
			CreatedAt: time.Now(),
		}},
		CreatedAt: time.Now(),
	}

	s.store.mu.Lock()
	s.store.tickets[ticket.ID] = ticket
	s.store.mu.Unlock()

	respond(c, ticket)
}

func (s *Server) listTickets(c *gin.Context) {
	filter := model.TicketStatus(c.Query("status"))

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	out := make([]model.SupportTicket, 0, len(s.store.tickets))
	for _, t := range s.store.tickets {
		if filter != "" && t.Status != filter {
			continue
		}
		out = append(out, *t)
	}
	respond(c, out)
}

func (s *Server) getTicket(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	t, ok := s.store.tickets[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Ticket not found")
		return
	}
	respond(c, *t)
}

func (s *Server) replyTicket(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		respondError(c, http.StatusBadRequest, "Text is required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	t, ok := s.store.tickets[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Ticket not found")
		return
	}
	msg := model.TicketMessage{
		ID:        uuid.New().String(),
		Sender:    "customer",
		Text:      req.Text,
		CreatedAt: time.Now(),
	}
	t.Messages = append(t.Messages, msg)
	if t.Status == model.TicketStatusOpen {
		t.Status = model.TicketStatusInProgress
	}
	respond(c, msg)
}

func (s *Server) closeTicket(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	t, ok := s.store.tickets[c.Param("id")]
	if !ok {
		respondError(c, http.StatusNotFound, "Ticket not found")
		return
	}
	t.Status = model.TicketStatusClosed
	respondNull(c)
}

// ---- upload ----

func (s *Server) uploadPackageImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Image is required")
		return
	}
	respond(c, gin.H{
		"url": fmt.Sprintf("https://cdn.devserver.local/packages/%s-%s", uuid.New().String(), file.Filename),
	})
}

// ---- wallet ----

func (s *Server) getWallet(c *gin.Context) {
	acc := currentAccount(c)
	s.store.mu.Lock()
	wallet := acc.wallet
	s.store.mu.Unlock()
	respond(c, wallet)
}

func (s *Server) walletTopUp(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		respondError(c, http.StatusBadRequest, "Amount must be positive")
		return
	}

	acc := currentAccount(c)
	s.store.mu.Lock()
	acc.wallet.Balance += req.Amount
	acc.ledger = append(acc.ledger, model.WalletTransaction{
		ID:          uuid.New().String(),
		Type:        model.WalletTransactionCredit,
		Amount:      req.Amount,
		Description: "Wallet top-up",
		CreatedAt:   time.Now(),
	})
	wallet := acc.wallet
	s.store.mu.Unlock()

	respond(c, wallet)
}

func (s *Server) walletPay(c *gin.Context) {
	var req struct {
		BookingID string  `json:"bookingId"`
		Amount    float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		respondError(c, http.StatusBadRequest, "Amount must be positive")
		return
	}

	acc := currentAccount(c)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if acc.wallet.Balance < req.Amount {
		respondError(c, http.StatusPaymentRequired, "Insufficient wallet balance")
		return
	}
	acc.wallet.Balance -= req.Amount
	acc.ledger = append(acc.ledger, model.WalletTransaction{
		ID:          uuid.New().String(),
		Type:        model.WalletTransactionDebit,
		Amount:      req.Amount,
		Description: "Booking payment",
		BookingID:   req.BookingID,
		CreatedAt:   time.Now(),
	})
	respond(c, acc.wallet)
}

func (s *Server) walletTransactions(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	acc := currentAccount(c)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	start := (page - 1) * limit
	if start > len(acc.ledger) {
		start = len(acc.ledger)
	}
	end := start + limit
	if end > len(acc.ledger) {
		end = len(acc.ledger)
	}
	respond(c, model.TransactionPage{
		Transactions: append([]model.WalletTransaction(nil), acc.ledger[start:end]...),
		Page:         page,
		Total:        len(acc.ledger),
	})
}

// ---- promo ----

func (s *Server) validatePromo(c *gin.Context) {
	var req struct {
		Code   string  `json:"code"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		respondError(c, http.StatusBadRequest, "Code is required")
		return
	}

	acc := currentAccount(c)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, coupon := range acc.coupons {
		if coupon.Code != req.Code {
			continue
		}
		discount := math.Min(req.Amount*coupon.DiscountPct/100, coupon.MaxDiscount)
		respond(c, model.PromoResult{
			Code:     req.Code,
			Discount: discount,
			NewTotal: req.Amount - discount,
		})
		return
	}
	respondError(c, http.StatusUnprocessableEntity, "Invalid promo code")
}

func (s *Server) applyPromo(c *gin.Context) {
	var req struct {
		Code      string `json:"code"`
		BookingID string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		respondError(c, http.StatusBadRequest, "Code is required")
		return
	}

	acc := currentAccount(c)
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	b, ok := s.store.bookings[req.BookingID]
	if !ok {
		respondError(c, http.StatusNotFound, "Booking not found")
		return
	}
	for _, coupon := range acc.coupons {
		if coupon.Code != req.Code {
			continue
		}
		discount := math.Min(b.booking.Price*coupon.DiscountPct/100, coupon.MaxDiscount)
		b.booking.Price -= discount
		respond(c, model.PromoResult{
			Code:     req.Code,
			Discount: discount,
			NewTotal: b.booking.Price,
		})
		return
	}
	respondError(c, http.StatusUnprocessableEntity, "Invalid promo code")
}

func (s *Server) listCoupons(c *gin.Context) {
	acc := currentAccount(c)
	s.store.mu.Lock()
	coupons := append([]model.Coupon(nil), acc.coupons...)
	s.store.mu.Unlock()
	respond(c, coupons)
}

func (s *Server) referralInfo(c *gin.Context) {
	acc := currentAccount(c)
	respond(c, model.ReferralInfo{
		Code:         "REF-" + acc.user.ID[:8],
		Referred:     0,
		RewardEarned: 0,
	})
}

func (s *Server) applyReferral(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		respondError(c, http.StatusBadRequest, "Code is required")
		return
	}
	respondNull(c)
}
