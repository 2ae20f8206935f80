// SPDX-License-Identifier: GPL-2.0-or-later

package random

import (
	"google.golang.org/protobuf/proto"

	"github.com/minavoii/unity-random/protos"
)

// MarshalState serializes the four state words, s0 through s3 in order,
// for storage alongside whatever owns the generator. No other data is
// persisted.
func (g *Generator) MarshalState() ([]byte, error) {
	data := protos.State_builder{
		S0: g.State.S0,
		S1: g.State.S1,
		S2: g.State.S2,
		S3: g.State.S3,
	}.Build()
	return proto.Marshal(data)
}

// UnmarshalState restores a state written by MarshalState. The generator
// continues the serialized sequence on its next draw.
func (g *Generator) UnmarshalState(in []byte) error {
	data := &protos.State{}
	if err := proto.Unmarshal(in, data); err != nil {
		return err
	}
	g.State = State{
		S0: data.GetS0(),
		S1: data.GetS1(),
		S2: data.GetS2(),
		S3: data.GetS3(),
	}
	return nil
}
