package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"openreaders_payments/internal/domain/entities"
	"openreaders_payments/internal/reader/purchase"
	"strings"
)

// consoleCheckout stands in for the gateway checkout UI. It prints the
// order and reads the payment id and signature the gateway returned. A
// blank payment id dismisses the checkout.
type consoleCheckout struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsoleCheckout(in io.Reader, out io.Writer) *consoleCheckout {
	return &consoleCheckout{in: bufio.NewReader(in), out: out}
}

func (c *consoleCheckout) Open(ctx context.Context, req purchase.CheckoutRequest) (purchase.CheckoutResult, error) {
	fmt.Fprintf(c.out, "\n%s checkout\n", req.Name)
	fmt.Fprintf(c.out, "  %s\n", req.Description)
	fmt.Fprintf(c.out, "  Key:    %s\n", req.KeyID)
	fmt.Fprintf(c.out, "  Order:  %s\n", req.OrderID)
	fmt.Fprintf(c.out, "  Amount: %d.%02d %s\n\n", req.Amount/100, req.Amount%100, req.Currency)

	paymentID, err := c.prompt(ctx, "razorpay_payment_id (blank to cancel): ")
	if err != nil {
		return purchase.CheckoutResult{}, err
	}
	if paymentID == "" {
		return purchase.CheckoutResult{Completed: false}, nil
	}
	sig, err := c.prompt(ctx, "razorpay_signature: ")
	if err != nil {
		return purchase.CheckoutResult{}, err
	}

	return purchase.CheckoutResult{
		Completed: true,
		Callback: entities.PaymentCallback{
			OrderID:   req.OrderID,
			PaymentID: paymentID,
			Signature: sig,
		},
	}, nil
}

func (c *consoleCheckout) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, label)

	type line struct {
		text string
		err  error
	}
	ch := make(chan line, 1)
	go func() {
		text, err := c.in.ReadString('\n')
		if err == io.EOF && text != "" {
			err = nil
		}
		ch <- line{text: strings.TrimSpace(text), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-ch:
		if l.err == io.EOF {
			return "", nil
		}
		return l.text, l.err
	}
}

// consoleView prints what a reader would see for a book.
type consoleView struct {
	out        io.Writer
	gate       *purchase.Gate
	totalPages int
	freePages  int
}

func newConsoleView(out io.Writer, gate *purchase.Gate, totalPages, freePages int) *consoleView {
	return &consoleView{out: out, gate: gate, totalPages: totalPages, freePages: freePages}
}

func (v *consoleView) Invalidate(contentID string) {}

func (v *consoleView) Open(contentID string) {
	if v.totalPages <= 0 {
		fmt.Fprintf(v.out, "Opening %s\n", contentID)
		return
	}
	n, err := v.gate.PagesVisible(context.Background(), contentID, v.totalPages, v.freePages)
	if err != nil {
		fmt.Fprintf(v.out, "Opening %s: %v\n", contentID, err)
		return
	}
	fmt.Fprintf(v.out, "Opening %s: %d of %d pages\n", contentID, n, v.totalPages)
}

type consoleNotifier struct {
	out io.Writer
}

func newConsoleNotifier(out io.Writer) *consoleNotifier {
	return &consoleNotifier{out: out}
}

func (n *consoleNotifier) Notify(level purchase.Level, message string) {
	fmt.Fprintf(n.out, "[%s] %s\n", level, message)
}
