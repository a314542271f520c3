package phase0_test

import (
	"encoding/json"
	"testing"

	"github.com/prysmaticlabs/remote-signer/consensus-types/phase0"
	"github.com/prysmaticlabs/remote-signer/encoding/bytesutil"
	"github.com/prysmaticlabs/remote-signer/encoding/ssz"
	"github.com/prysmaticlabs/remote-signer/testing/assert"
	"github.com/prysmaticlabs/remote-signer/testing/require"
	"github.com/prysmaticlabs/remote-signer/testing/util"
)

func TestFork_HashTreeRoot(t *testing.T) {
	f := &phase0.Fork{
		PreviousVersion: bytesutil.PadTo([]byte{123}, 4),
		CurrentVersion:  bytesutil.PadTo([]byte{124}, 4),
		Epoch:           1234567890,
	}
	root, err := f.HashTreeRoot()
	require.NoError(t, err)
	expected := [32]byte{19, 46, 77, 103, 92, 175, 247, 33, 100, 64, 17, 111, 199, 145, 69, 38, 217, 112, 6, 16, 149, 201, 225, 144, 192, 228, 197, 172, 157, 78, 114, 140}
	assert.DeepEqual(t, expected, root)
	assert.Equal(t, ssz.ForkRoot(f.PreviousVersion, f.CurrentVersion, uint64(f.Epoch)), root)
}

func TestCheckpoint_HashTreeRoot(t *testing.T) {
	c := &phase0.Checkpoint{
		Epoch: 1234567890,
		Root:  bytesutil.PadTo([]byte{222}, 32),
	}
	root, err := c.HashTreeRoot()
	require.NoError(t, err)
	expected := [32]byte{228, 65, 39, 109, 183, 249, 167, 232, 125, 239, 25, 155, 207, 4, 84, 174, 176, 229, 175, 224, 62, 33, 215, 254, 170, 220, 132, 65, 246, 128, 68, 194}
	assert.DeepEqual(t, expected, root)
}

func TestFork_HashTreeRoot_BadVersionLength(t *testing.T) {
	f := &phase0.Fork{
		PreviousVersion: []byte{1, 2, 3},
		CurrentVersion:  []byte{1, 2, 3, 4},
	}
	_, err := f.HashTreeRoot()
	assert.ErrorContains(t, "Fork.PreviousVersion: expected 4 bytes, got 3", err)
}

func TestAttestationData_HashTreeRoot_NilCheckpoint(t *testing.T) {
	data := util.NewAttestationData()
	data.Target = nil
	_, err := data.HashTreeRoot()
	require.ErrorIs(t, err, phase0.ErrNilObject)
	assert.ErrorContains(t, "AttestationData.Target", err)
}

func TestAttestationData_HashTreeRoot_FieldSensitivity(t *testing.T) {
	data := util.NewAttestationData()
	base, err := data.HashTreeRoot()
	require.NoError(t, err)

	data.Target.Epoch = 1
	changed, err := data.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, base, changed)

	again, err := data.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, changed, again)
}

func TestBeaconBlock_HashTreeRootMatchesHeader(t *testing.T) {
	tests := []struct {
		name string
		blk  *phase0.BeaconBlock
	}{
		{
			name: "empty body",
			blk:  util.NewBeaconBlock(),
		},
		{
			name: "all operations",
			blk: util.GenerateBlock(&util.BlockGenConfig{
				NumProposerSlashings: 2,
				NumAttesterSlashings: 1,
				NumAttestations:      3,
				NumDeposits:          2,
				NumVoluntaryExits:    1,
			}, 100),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blockRoot, err := tt.blk.HashTreeRoot()
			require.NoError(t, err)
			header, err := tt.blk.Header()
			require.NoError(t, err)
			headerRoot, err := header.HashTreeRoot()
			require.NoError(t, err)
			assert.Equal(t, blockRoot, headerRoot)
		})
	}
}

func TestBeaconBlockBody_HashTreeRoot_TooManyOperations(t *testing.T) {
	blk := util.GenerateBlock(&util.BlockGenConfig{NumAttesterSlashings: 3}, 1)
	_, err := blk.HashTreeRoot()
	assert.ErrorContains(t, "BeaconBlockBody.AttesterSlashings", err)
}

func TestAttestation_HashTreeRoot_MissingDelimiter(t *testing.T) {
	att := util.NewAttestation()
	att.AggregationBits = []byte{0x00}
	_, err := att.HashTreeRoot()
	assert.ErrorContains(t, "missing length delimiter bit", err)
}

func TestAttestation_HashTreeRoot_BitsMatter(t *testing.T) {
	att := util.NewAttestation()
	first, err := att.HashTreeRoot()
	require.NoError(t, err)
	att.AggregationBits = []byte{0b00010010}
	second, err := att.HashTreeRoot()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeposit_HashTreeRoot_ShortProof(t *testing.T) {
	d := util.NewDeposit(32)
	d.Proof = d.Proof[:10]
	_, err := d.HashTreeRoot()
	assert.ErrorContains(t, "Deposit.Proof: expected 33 roots, got 10", err)
}

func TestAttestationData_JSON(t *testing.T) {
	data := util.NewAttestationData()
	data.Slot = 3
	data.Source.Epoch = 42
	data.Target.Epoch = 73
	enc, err := json.Marshal(data)
	require.NoError(t, err)
	want := `{"slot":"3","index":"0","beacon_block_root":"0x0000000000000000000000000000000000000000000000000000000000000000",` +
		`"source":{"epoch":"42","root":"0x0000000000000000000000000000000000000000000000000000000000000000"},` +
		`"target":{"epoch":"73","root":"0x0000000000000000000000000000000000000000000000000000000000000000"}}`
	assert.Equal(t, want, string(enc))

	decoded := &phase0.AttestationData{}
	require.NoError(t, json.Unmarshal(enc, decoded))
	assert.DeepEqual(t, data, decoded)
}

func TestBeaconBlock_JSONKeepsRoot(t *testing.T) {
	blk := util.GenerateBlock(util.DefaultBlockGenConfig(), 9)
	enc, err := json.Marshal(blk)
	require.NoError(t, err)
	decoded := &phase0.BeaconBlock{}
	require.NoError(t, json.Unmarshal(enc, decoded))

	want, err := blk.HashTreeRoot()
	require.NoError(t, err)
	got, err := decoded.HashTreeRoot()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
