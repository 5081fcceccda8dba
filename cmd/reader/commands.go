package main

import (
	"context"
	"fmt"
	"openreaders_payments/internal/config"
	"openreaders_payments/internal/reader/paymentapi"
	"openreaders_payments/internal/reader/purchase"
	"openreaders_payments/internal/reader/storage"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// session holds what every command needs: config and an open store.
type session struct {
	cfg   *config.Reader
	store storage.KV
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.LoadReader()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := storage.Open(ctx, *cfg)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, store: store}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

func unlockCmd() *cobra.Command {
	var (
		title string
		price float64
		pages int
	)
	cmd := &cobra.Command{
		Use:   "unlock [content-id]",
		Short: "Buy a book and unlock all of its pages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			gate := purchase.NewGate(s.store)
			orchestrator := purchase.NewOrchestrator(
				s.store,
				paymentapi.NewClient(s.cfg.ServerURL, s.cfg.HTTPTimeout, nil),
				newConsoleCheckout(cmd.InOrStdin(), out),
				newConsoleView(out, gate, pages, s.cfg.FreePages),
				newConsoleNotifier(out),
				purchase.Options{
					KeyID:           s.cfg.RazorpayKeyID,
					SiteName:        s.cfg.SiteName,
					CheckoutTimeout: s.cfg.CheckoutTimeout,
				},
			)

			_, err = orchestrator.Purchase(ctx, purchase.Item{ID: args[0], Title: title, Price: price})
			return err
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Book title")
	cmd.Flags().Float64VarP(&price, "price", "p", 0, "Price in rupees")
	cmd.Flags().IntVar(&pages, "pages", 0, "Total pages in the book")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [content-id]",
		Short: "Show whether a book is unlocked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			ent, ok, err := purchase.NewEntitlements(s.store).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintf(out, "%s: locked\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "%s: unlocked\n", args[0])
			fmt.Fprintf(out, "  Title:     %s\n", ent.ContentTitle)
			fmt.Fprintf(out, "  Paid:      %.2f %s\n", ent.Amount, ent.Currency)
			fmt.Fprintf(out, "  Order:     %s\n", ent.OrderID)
			fmt.Fprintf(out, "  Payment:   %s\n", ent.PaymentID)
			fmt.Fprintf(out, "  Purchased: %s\n", ent.PurchasedAt.Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}
}

func pagesCmd() *cobra.Command {
	var (
		total int
		free  int
	)
	cmd := &cobra.Command{
		Use:   "pages [content-id]",
		Short: "Print how many pages of a book are readable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			if !cmd.Flags().Changed("free") {
				free = s.cfg.FreePages
			}
			n, err := purchase.NewGate(s.store).PagesVisible(cmd.Context(), args[0], total, free)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}

	cmd.Flags().IntVar(&total, "total", 0, "Total pages in the book")
	cmd.Flags().IntVar(&free, "free", 10, "Free preview pages")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the payment server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadReader()
			if err != nil {
				return err
			}
			h, err := paymentapi.NewClient(cfg.ServerURL, cfg.HTTPTimeout, nil).Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server:   %s (%s)\nRazorpay: %t\n", h.Status, h.Message, h.Razorpay)
			return nil
		},
	}
}
