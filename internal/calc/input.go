package calc

import (
	"github.com/alexiusacademia/gosect/internal/catalog"
	"github.com/alexiusacademia/gosect/internal/shape"
)

// Input is the flat parameter set for one section. Dimensions are in mm and
// the yield strength in MPa. Only the fields the section type uses are read.
type Input struct {
	Label string  `json:"label,omitempty"`
	Fy    float64 `json:"fy"`

	// Built-up I
	BTop float64 `json:"b_top,omitempty"`
	TTop float64 `json:"t_top,omitempty"`
	BBot float64 `json:"b_bot,omitempty"`
	TBot float64 `json:"t_bot,omitempty"`
	Tw   float64 `json:"tw,omitempty"`
	H    float64 `json:"h,omitempty"`

	// Tube
	D float64 `json:"d,omitempty"`
	T float64 `json:"t,omitempty"`

	// Channel: a catalog designation, or explicit dimensions when empty
	Channel   string  `json:"channel,omitempty"`
	ChannelH  float64 `json:"channel_h,omitempty"`
	ChannelB  float64 `json:"channel_b,omitempty"`
	ChannelTw float64 `json:"channel_tw,omitempty"`
	ChannelTf float64 `json:"channel_tf,omitempty"`
	ChannelR  float64 `json:"channel_r,omitempty"`

	// GapBack is the total clear distance shared by the two channel backs
	// and the tube in the L-R arrangement; each side gets half.
	GapBack float64 `json:"gap_back,omitempty"`
	// YC is the distance from the tube centre to each channel centroid in
	// the T-B arrangement.
	YC float64 `json:"y_c,omitempty"`
}

// Job pairs a section type with its parameters. In JSON the type sits next
// to the parameters: {"type": "CHS_UPE_LR", "d": 323, ...}.
type Job struct {
	Kind Kind `json:"type"`
	Input
}

// channel resolves the channel profile of the input.
func (in Input) channel(opening shape.Opening) (*shape.Channel, error) {
	h, b, tw, tf, r, err := in.channelDims()
	if err != nil {
		return nil, err
	}
	return shape.NewChannel(h, b, tw, tf, r, opening)
}

func (in Input) channelDims() (h, b, tw, tf, r float64, err error) {
	if in.Channel != "" {
		p, err := catalog.UPE(in.Channel)
		if err != nil {
			return 0, 0, 0, 0, 0, err
		}
		return p.H, p.B, p.Tw, p.Tf, p.R, nil
	}
	return in.ChannelH, in.ChannelB, in.ChannelTw, in.ChannelTf, in.ChannelR, nil
}

// GoverningThickness returns the thickest plate of the section, which sets
// the yield strength of a thickness-banded grade.
func (in Input) GoverningThickness(kind Kind) (float64, error) {
	switch kind {
	case BuiltUpI:
		return catalog.MaxThickness(in.TTop, in.TBot, in.Tw), nil
	case CHS:
		return in.T, nil
	case CHSUPELR, CHSUPETB:
		_, _, tw, tf, _, err := in.channelDims()
		if err != nil {
			return 0, err
		}
		return catalog.MaxThickness(in.T, tw, tf), nil
	}
	return 0, unknownKind(kind)
}
