package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"cardcheck/internal/config"
	"cardcheck/internal/creditcard"
	"cardcheck/internal/models"
	"cardcheck/internal/services/cards"
	"cardcheck/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInvalidCards = errors.New("one or more card numbers are invalid")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <number>...",
		Short: "Check card numbers with the Luhn checksum and classify their network",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := cards.NewService(nil, nil, nil, cards.Config{
				BatchMaxSize: len(args),
				BatchWorkers: 4,
			}, opts.log)

			results, err := svc.CheckBatch(cmd.Context(), args)
			if err != nil {
				return err
			}

			invalid := 0
			for _, r := range results {
				if !r.Valid {
					invalid++
				}
			}
			opts.log.Debug("checked", zap.Int("count", len(results)), zap.Int("invalid", invalid))

			err = render(cmd.OutOrStdout(), opts.output, results, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NUMBER\tVALID\tTYPE")
				for _, r := range results {
					fmt.Fprintf(tw, "%s\t%t\t%s\n", r.Masked, r.Valid, r.CardType)
				}
				return tw.Flush()
			})
			if err != nil {
				return err
			}

			if strict && invalid > 0 {
				return errInvalidCards
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any number is invalid")
	return cmd
}

type typeOutput struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func newTypesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the recognised card networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := creditcard.AllCardTypes()
			out := make([]typeOutput, 0, len(all))
			for _, ct := range all {
				out = append(out, typeOutput{ID: int(ct), Name: ct.String()})
			}

			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				for _, t := range out {
					fmt.Fprintf(w, "%d\t%s\n", t.ID, t.Name)
				}
				return nil
			})
		},
	}
}

type tokenOutput struct {
	Token     string `json:"token" yaml:"token"`
	UserID    uint   `json:"user_id" yaml:"user_id"`
	Role      string `json:"role" yaml:"role"`
	ExpiresIn string `json:"expires_in" yaml:"expires_in"`
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID uint
		role   string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == 0 {
				return errors.New("--user is required")
			}

			jwtCfg, err := config.LoadJWT()
			if err != nil {
				return err
			}

			tok, err := utils.GenerateToken(jwtCfg.Secret, jwtCfg.Issuer, jwtCfg.TTL, &models.UserClaims{
				UserID:      userID,
				Role:        role,
				Permissions: models.GetDefaultPermissions(role),
			})
			if err != nil {
				return err
			}
			opts.log.Debug("token minted", zap.Uint("user_id", userID), zap.String("role", role))

			out := tokenOutput{Token: tok, UserID: userID, Role: role, ExpiresIn: jwtCfg.TTL.String()}
			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, tok)
				return err
			})
		},
	}

	cmd.Flags().UintVar(&userID, "user", 0, "user ID to put in the token")
	cmd.Flags().StringVar(&role, "role", "user", "role: user, merchant or admin")
	return cmd
}

func newKeygenCmd(opts *rootOptions) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random key for JWT_SECRET or FINGERPRINT_KEY",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 16 {
				return fmt.Errorf("--bytes must be at least 16, got %d", size)
			}
			key, err := utils.GenerateSecureKey(size)
			if err != nil {
				return err
			}

			out := map[string]string{"key": key, "bytes": strconv.Itoa(size)}
			return render(cmd.OutOrStdout(), opts.output, out, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, key)
				return err
			})
		},
	}

	cmd.Flags().IntVar(&size, "bytes", 32, "key size in bytes")
	return cmd
}
