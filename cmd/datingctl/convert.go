package main

import (
	"fmt"
	"time"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/dating"
	"github.com/curtisnewbie/dating/util/atom"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/spf13/cobra"
)

var canonicalTimeFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func newEncodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode <date|time|datetime> <value>",
		Short: "Render a canonical value as locale text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(args[0], format)
			if err != nil {
				return err
			}
			v, err := parseCanonical(codec.Category(), args[1])
			if err != nil {
				return err
			}
			s, err := codec.Encode(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", dating.DefaultFormat, "Format key in the catalog")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode <date|time|datetime> <text>",
		Short: "Parse locale text into a canonical value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := newCodec(args[0], format)
			if err != nil {
				return err
			}
			out, err := decodeCanonical(codec, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", dating.DefaultFormat, "Format key in the catalog")
	return cmd
}

func newCodec(category string, format string) (*dating.Codec, error) {
	cat, err := catalog.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return dating.NewCodec(cat, format)
}

func parseCanonical(cat catalog.Category, value string) (any, error) {
	if cat == catalog.Date {
		d, err := atom.ParseDate(atom.SQLDateFormat, value)
		if err != nil {
			return nil, errs.ErrIllegalArgument.Wrapf(err, "expected date as 2006-01-02")
		}
		return d, nil
	}
	t, err := atom.FuzzParseTime(canonicalTimeFormats, value)
	if err != nil {
		return nil, errs.ErrIllegalArgument.Wrapf(err, "expected RFC 3339 time")
	}
	return t.UTC(), nil
}

// Decode text and render it as 2006-01-02 for dates or RFC 3339 UTC otherwise, "" when absent.
func decodeCanonical(codec *dating.Codec, text string) (string, error) {
	if !codec.Category().ZoneAware() {
		d, err := codec.DecodeDate(text)
		if err != nil || d == nil {
			return "", err
		}
		return d.String(), nil
	}
	t, err := codec.DecodeInstant(text)
	if err != nil || t == nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}
