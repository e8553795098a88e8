// Package lnkread orchestrates the low-level decoders in internal/format
// into a fully decoded types.Record, the way hivekit's internal/reader
// orchestrates hive/{nk,vk,hbin}.go into a walkable tree.
package lnkread

import (
	"fmt"

	"github.com/5l1v3r1/lifer/internal/format"
	"github.com/5l1v3r1/lifer/pkg/types"
)

// Decode parses a complete shell link file already read into data, and
// labels the result with path for display/error purposes.
func Decode(data []byte, path string) (types.Record, error) {
	rec := types.Record{Path: path, FileSize: int64(len(data))}

	h, err := format.ParseHeader(data)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", path, err)
	}
	rec.Header = types.Header{
		CLSID:        types.GUID(h.CLSID),
		Flags:        h.Flags,
		Attributes:   h.Attributes,
		CreationTime: h.CreationTime,
		AccessTime:   h.AccessTime,
		WriteTime:    h.WriteTime,
		TargetSize:   h.TargetSize,
		IconIndex:    h.IconIndex,
		ShowState:    h.ShowState,
		HotkeyLow:    h.HotkeyLow,
		HotkeyHigh:   h.HotkeyHigh,
		Reserved1:    h.Reserved1,
		Reserved2:    h.Reserved2,
		Reserved3:    h.Reserved3,
	}

	pos := format.HeaderSize

	if h.HasFlag(format.FlagHasTargetIDList) {
		idl, consumed, err := format.ParseTargetIDList(data, pos)
		if err != nil {
			return rec, fmt.Errorf("%s: %w", path, err)
		}
		rec.TargetIDList = types.TargetIDList{
			Present:  true,
			ListSize: idl.ListSize,
			NumItems: idl.NumItems,
		}
		pos += consumed
	}

	unicode := h.HasFlag(format.FlagIsUnicode)

	if h.HasFlag(format.FlagHasLinkInfo) {
		li, consumed, err := format.ParseLinkInfo(data, pos)
		if err != nil {
			// LinkInfo gets bounded recovery (spec §7): a malformed block
			// still yields a usable record with LinkInfo absent.
			rec.LinkInfo = types.LinkInfo{Present: false}
		} else {
			rec.LinkInfo = decodeLinkInfo(li)
			pos += consumed
		}
	}

	for slot := 0; slot < 5; slot++ {
		if h.Flags&format.StringSlotFlagBit[slot] == 0 {
			continue
		}
		item, consumed, err := format.ParseStringDataItem(data, pos, unicode)
		if err != nil {
			return rec, fmt.Errorf("%s: string data slot %d: %w", path, slot, err)
		}
		pos += consumed
		assignStringSlot(&rec.StringData, slot, item, unicode)
	}

	ed, err := format.ParseExtraData(data, pos)
	if err != nil {
		return rec, fmt.Errorf("%s: %w", path, err)
	}
	rec.ExtraData = decodeExtraData(ed)

	return rec, nil
}

func decodeLinkInfo(li format.LinkInfo) types.LinkInfo {
	out := types.LinkInfo{
		Present:           true,
		HeaderSize:        li.HeaderSize,
		HasVolumeID:       li.HasVolumeIDAndBasePath,
		HasCNRL:           li.HasCNRLAndSuffix,
		LocalBasePath:     decodeANSI(li.LocalBasePath),
		LocalBasePathU:    decodeUTF16LE(li.LocalBasePathU),
		CommonPathSuffix:  decodeANSI(li.CommonPathSuffix),
		CommonPathSuffixU: decodeUTF16LE(li.CommonPathSuffixU),
	}
	if out.HasVolumeID {
		v := li.VolumeID
		out.VolumeID = types.VolumeID{
			DriveType:       uint32(v.DriveType),
			DriveSerial:     v.DriveSerial,
			HasUnicodeLabel: v.HasUnicodeLabel,
			VolumeLabel:     decodeANSI(v.VolumeLabel),
			VolumeLabelU:    decodeUTF16LE(v.VolumeLabelU),
		}
	}
	if out.HasCNRL {
		c := li.CNRL
		out.CNRL = types.CommonNetworkRelativeLink{
			Flags:               c.Flags,
			NetworkProviderType: c.NetworkProviderType,
			NetName:             decodeANSI(c.NetName),
			DeviceName:          decodeANSI(c.DeviceName),
			HasUnicodeNames:     c.HasUnicodeNames,
			NetNameU:            decodeUTF16LE(c.NetNameU),
			DeviceNameU:         decodeUTF16LE(c.DeviceNameU),
		}
	}
	return out
}

func assignStringSlot(sd *types.StringData, slot int, item format.StringDataItem, unicode bool) {
	var value string
	if unicode {
		value = decodeUTF16LE(item.Raw)
	} else {
		value = decodeANSI(item.Raw)
	}

	switch slot {
	case format.StringSlotName:
		sd.Name, sd.NameChars, sd.HasName = value, item.CountChars, true
	case format.StringSlotRelativePath:
		sd.RelativePath, sd.RelativePathChars, sd.HasRelativePath = value, item.CountChars, true
	case format.StringSlotWorkingDir:
		sd.WorkingDir, sd.WorkingDirChars, sd.HasWorkingDir = value, item.CountChars, true
	case format.StringSlotArguments:
		sd.Arguments, sd.ArgumentsChars, sd.HasArguments = value, item.CountChars, true
	case format.StringSlotIconLocation:
		sd.IconLocation, sd.IconLocationChars, sd.HasIconLocation = value, item.CountChars, true
	}
}

func decodeExtraData(ed format.ExtraData) types.ExtraData {
	out := types.ExtraData{Aborted: ed.Aborted}
	for _, blk := range ed.Blocks {
		tb := types.ExtraDataBlock{Signature: blk.Signature, Name: blk.Name, Size: blk.Size}
		switch blk.Signature {
		case format.SigConsole:
			if c, err := format.ParseConsoleDataBlock(blk.Payload); err == nil {
				tb.Console = &types.ConsoleDetail{
					FillAttributes:     c.FillAttributes,
					ScreenBufferSizeX:  c.ScreenBufferSizeX,
					ScreenBufferSizeY:  c.ScreenBufferSizeY,
					WindowSizeX:        c.WindowSizeX,
					WindowSizeY:        c.WindowSizeY,
					FontSize:           c.FontSize,
					FaceName:           decodeUTF16LE(trimUTF16NulPad(c.FaceName)),
				}
			}
		case format.SigTracker:
			if t, err := format.ParseTrackerDataBlock(blk.Payload); err == nil {
				tb.Tracker = &types.TrackerDetail{
					Version:   t.Version,
					MachineID: decodeANSI(trimAnsiNulPad(t.MachineID)),
					Droid:     [2]types.GUID{types.GUID(t.Droid[0]), types.GUID(t.Droid[1])},
					DroidBirth: [2]types.GUID{types.GUID(t.DroidBirth[0]), types.GUID(t.DroidBirth[1])},
				}
			}
		case format.SigSpecialFolder:
			if s, err := format.ParseSpecialFolderDataBlock(blk.Payload); err == nil {
				tb.SpecialFolder = &types.SpecialFolderDetail{SpecialFolderID: s.SpecialFolderID, Offset: s.Offset}
			}
		case format.SigKnownFolder:
			if k, err := format.ParseKnownFolderDataBlock(blk.Payload); err == nil {
				tb.KnownFolder = &types.KnownFolderDetail{FolderID: types.GUID(k.FolderID), Offset: k.Offset}
			}
		case format.SigEnvironmentVariable, format.SigIconEnvironment, format.SigDarwin:
			if p, err := format.ParsePathPairDataBlock(blk.Payload); err == nil {
				tb.PathPair = &types.PathPairDetail{
					TargetAnsi:    decodeANSI(trimAnsiNulPad(p.TargetAnsi)),
					TargetUnicode: decodeUTF16LE(trimUTF16NulPad(p.TargetUnicode)),
				}
			}
		case format.SigShim:
			if s, err := format.ParseShimDataBlock(blk.Payload); err == nil {
				tb.Shim = &types.ShimDetail{LayerName: decodeUTF16LE(s.LayerName), Truncated: s.Truncated}
			}
		case format.SigVistaAndAboveIDList:
			tb.VistaIDListCount = countU16PrefixedItems(blk.Payload)
		}
		out.Blocks = append(out.Blocks, tb)
	}
	return out
}

// countU16PrefixedItems walks a VistaAndAboveIDListDataBlock payload the
// same way TargetIDList items are walked: each item's length prefix
// already includes its own 2 bytes, so the walk advances by that length
// alone, not 2+length, until a zero or truncated read terminates it.
func countU16PrefixedItems(b []byte) int {
	pos, count := 0, 0
	for pos+2 <= len(b) {
		n := int(b[pos]) | int(b[pos+1])<<8
		if n == 0 {
			break
		}
		if pos+n > len(b) {
			break
		}
		pos += n
		count++
	}
	return count
}

func trimAnsiNulPad(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

func trimUTF16NulPad(b []byte) []byte {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[:i]
		}
	}
	return b
}
