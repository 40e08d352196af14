package cmd

import (
	"errors"

	"parcel-tracker/internal/features/tracking/classifier"
	"parcel-tracker/internal/features/tracking/domain"

	"github.com/spf13/cobra"
)

// classification is a match plus the pattern rule that produced it.
type classification struct {
	domain.CarrierMatch
	Rule string `json:"rule"`
}

type rejection struct {
	Rejected     bool   `json:"rejected"`
	Reason       string `json:"reason"`
	HoaxDetected bool   `json:"hoaxDetected"`
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <tracking-number>",
		Short: "Detect the carrier of a tracking number",
		Long:  `Validate a tracking number and detect its likely carrier. No backend is contacted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := classifier.Classify(args[0])
			if err != nil {
				var rejected *domain.RejectedError
				if errors.As(err, &rejected) {
					if perr := printJSON(cmd.OutOrStdout(), rejection{
						Rejected:     true,
						Reason:       rejected.Reason,
						HoaxDetected: rejected.HoaxDetected,
					}); perr != nil {
						return perr
					}
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), classification{
				CarrierMatch: match,
				Rule:         classifier.Describe(match.CarrierName),
			})
		},
	}
}
