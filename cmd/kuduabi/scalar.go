package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kudu/core"
)

func scalarCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "scalar", Short: "transcode a single built-in scalar"}
	cmd.AddCommand(scalarEncodeCmd())
	cmd.AddCommand(scalarDecodeCmd())
	return cmd
}

func scalarEncodeCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "encode --type <builtin> <text>",
		Short: "encode a built-in scalar's textual representation into hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := core.ValueKindFromName(kindName)
			if err != nil {
				return err
			}
			val, err := core.ValueFromString(kind, args[0])
			if err != nil {
				return err
			}
			bs := core.NewByteStream()
			if err := val.ToBin(bs); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bs.HexData())
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "type", "", "built-in scalar type name, e.g. name, asset, varuint32")
	cmd.MarkFlagRequired("type")
	return cmd
}

func scalarDecodeCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "decode --type <builtin> <hex>",
		Short: "decode hex into a built-in scalar's JSON representation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := core.ValueKindFromName(kindName)
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			bs := core.NewByteStreamFromBytes(data)
			val, err := core.ValueFromBin(kind, bs)
			if err != nil {
				return err
			}
			raw, err := val.ToJSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
	cmd.Flags().StringVar(&kindName, "type", "", "built-in scalar type name, e.g. name, asset, varuint32")
	cmd.MarkFlagRequired("type")
	return cmd
}
