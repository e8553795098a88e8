package lnk

import (
	"fmt"
	"strings"

	"github.com/5l1v3r1/lifer/internal/format"
	"github.com/5l1v3r1/lifer/pkg/lnk/guid"
	"github.com/5l1v3r1/lifer/pkg/types"
)

// Formatted is the parallel record of display strings produced by Format.
// It never holds decoded binary data, only the rendered text a CLI or
// report would show a user.
type Formatted struct {
	Path string

	HeaderSize string
	CLSID      string
	Flags      string
	Attributes string

	CreationTimeShort string
	AccessTimeShort   string
	WriteTimeShort    string
	CreationTimeLong  string
	AccessTimeLong    string
	WriteTimeLong     string

	TargetSize string
	IconIndex  string
	ShowState  string
	Hotkey     string

	Reserved1 string
	Reserved2 string
	Reserved3 string

	TargetIDListSize  string
	TargetIDListCount string

	LinkInfo LinkInfoFormatted

	StringData StringDataFormatted

	ExtraDataTypes []string
	ExtraDataDetails []string
}

// VolumeIDFormatted renders VolumeID. VolumeLabel and VolumeLabelUnicode
// are reported separately: when a Unicode label is present, the ANSI
// slot renders as the sentinelNotUsed.
type VolumeIDFormatted struct {
	DriveType         string
	DriveSerial       string
	VolumeLabel       string
	VolumeLabelUnicode string
}

// CNRLFormatted renders CommonNetworkRelativeLink.
type CNRLFormatted struct {
	Flags               string
	NetworkProviderType string
	NetName             string
	DeviceName          string
}

// LinkInfoFormatted renders LinkInfo.
type LinkInfoFormatted struct {
	Present          bool
	VolumeID         VolumeIDFormatted
	LocalBasePath    string
	CNRL             CNRLFormatted
	CommonPathSuffix string
}

// StringDataFormatted renders StringData, one slot per field.
type StringDataFormatted struct {
	Name, NameChars                 string
	RelativePath, RelativePathChars string
	WorkingDir, WorkingDirChars     string
	Arguments, ArgumentsChars       string
	IconLocation, IconLocationChars string
}

const (
	sentinelNotSet  = "[NOT SET]"
	sentinelNotUsed = "[NOT USED]"
	sentinelEmpty   = "[EMPTY]"
	sentinelNA      = "[N/A]"
)

// Format converts a decoded Record into its display form. It is a pure
// function: no I/O, no mutation of rec.
func Format(rec types.Record) Formatted {
	h := rec.Header
	out := Formatted{
		Path:       rec.Path,
		HeaderSize: fmt.Sprintf("%d", format.HeaderSize),
		CLSID:      guid.String(h.CLSID),
		Flags:      formatFlags(h.Flags),
		Attributes: formatAttributes(h.Attributes),

		CreationTimeShort: format.FormatFiletimeShort(h.CreationTime),
		AccessTimeShort:   format.FormatFiletimeShort(h.AccessTime),
		WriteTimeShort:    format.FormatFiletimeShort(h.WriteTime),
		CreationTimeLong:  format.FormatFiletimeLong(h.CreationTime),
		AccessTimeLong:    format.FormatFiletimeLong(h.AccessTime),
		WriteTimeLong:     format.FormatFiletimeLong(h.WriteTime),

		TargetSize: fmt.Sprintf("%d", h.TargetSize),
		IconIndex:  fmt.Sprintf("%d", h.IconIndex),
		ShowState:  formatShowState(h.ShowState),
		Hotkey:     formatHotkey(h.HotkeyLow, h.HotkeyHigh),

		Reserved1: fmt.Sprintf("%d", h.Reserved1),
		Reserved2: fmt.Sprintf("%d", h.Reserved2),
		Reserved3: fmt.Sprintf("%d", h.Reserved3),
	}

	if rec.TargetIDList.Present {
		out.TargetIDListSize = fmt.Sprintf("%d", rec.TargetIDList.ListSize)
		out.TargetIDListCount = fmt.Sprintf("%d", rec.TargetIDList.NumItems)
	} else {
		out.TargetIDListSize = "0"
		out.TargetIDListCount = "0"
	}

	out.LinkInfo = formatLinkInfo(rec.LinkInfo)
	out.StringData = formatStringData(rec.StringData)
	out.ExtraDataTypes, out.ExtraDataDetails = formatExtraData(rec.ExtraData)

	return out
}

func formatFlags(flags uint32) string {
	var names []string
	for i, name := range format.FlagNames {
		if flags&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return sentinelNotSet
	}
	return strings.Join(names, " | ")
}

func formatAttributes(attrs uint32) string {
	if attrs == 0 {
		return "NONE"
	}
	if attrs == format.AttrNormal {
		return "NORMAL"
	}
	var names []string
	for _, a := range format.AttrNames {
		if attrs&a.Bit != 0 {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return sentinelNotSet
	}
	return strings.Join(names, " | ")
}

func formatShowState(state uint32) string {
	switch state {
	case format.ShowMaximized:
		return "SW_SHOWMAXIMIZED"
	case format.ShowMinNoActive:
		return "SW_SHOWMINNOACTIVE"
	default:
		return "SW_SHOWNORMAL"
	}
}

func formatHotkey(low, high byte) string {
	var key string
	switch {
	case low >= format.HotkeyCharLow && low <= format.HotkeyCharHigh:
		key = fmt.Sprintf("'%c'", low)
	case low >= format.HotkeyF1 && low <= format.HotkeyF24:
		key = fmt.Sprintf("'F%d'", int(low)-0x6F)
	case low == format.HotkeyNumLock:
		key = "'NUM LOCK'"
	case low == format.HotkeyScrollLock:
		key = "'SCROLL LOCK'"
	case low == 0:
		return sentinelNotSet
	default:
		key = fmt.Sprintf("0x%02X", low)
	}

	var mods []string
	if high&format.HotkeyModShift != 0 {
		mods = append(mods, "SHIFT")
	}
	if high&format.HotkeyModCtrl != 0 {
		mods = append(mods, "CTRL")
	}
	if high&format.HotkeyModAlt != 0 {
		mods = append(mods, "ALT")
	}
	if len(mods) == 0 {
		return key
	}
	return key + "+" + strings.Join(mods, "+")
}

func formatLinkInfo(li types.LinkInfo) LinkInfoFormatted {
	var out LinkInfoFormatted
	out.Present = li.Present
	if !li.Present {
		out.VolumeID = VolumeIDFormatted{DriveType: sentinelNotSet, DriveSerial: sentinelNotSet, VolumeLabel: sentinelNotSet, VolumeLabelUnicode: sentinelNotSet}
		out.LocalBasePath = sentinelNotSet
		out.CNRL = CNRLFormatted{Flags: sentinelNotSet, NetworkProviderType: sentinelNotSet, NetName: sentinelNotSet, DeviceName: sentinelNotSet}
		out.CommonPathSuffix = sentinelNotSet
		return out
	}

	if li.HasVolumeID {
		v := li.VolumeID
		ansiLabel := v.VolumeLabel
		if v.HasUnicodeLabel {
			ansiLabel = sentinelNotUsed
		} else if ansiLabel == "" {
			ansiLabel = sentinelEmpty
		}
		unicodeLabel := sentinelNotUsed
		if v.HasUnicodeLabel {
			unicodeLabel = v.VolumeLabelU
			if unicodeLabel == "" {
				unicodeLabel = sentinelEmpty
			}
		}
		driveName, ok := format.DriveTypeNames[format.DriveType(v.DriveType)]
		if !ok {
			driveName = sentinelNA
		}
		out.VolumeID = VolumeIDFormatted{
			DriveType:          driveName,
			DriveSerial:        fmt.Sprintf("%08X", v.DriveSerial),
			VolumeLabel:        ansiLabel,
			VolumeLabelUnicode: unicodeLabel,
		}
	} else {
		out.VolumeID = VolumeIDFormatted{DriveType: sentinelNotSet, DriveSerial: sentinelNotSet, VolumeLabel: sentinelNotSet, VolumeLabelUnicode: sentinelNotSet}
	}

	if li.LocalBasePath != "" || li.HasVolumeID {
		out.LocalBasePath = li.LocalBasePath
	} else {
		out.LocalBasePath = sentinelNotSet
	}

	if li.HasCNRL {
		out.CNRL = formatCNRL(li.CNRL)
	} else {
		out.CNRL = CNRLFormatted{Flags: sentinelNotSet, NetworkProviderType: sentinelNotSet, NetName: sentinelNotSet, DeviceName: sentinelNotSet}
	}

	if li.CommonPathSuffix != "" {
		out.CommonPathSuffix = li.CommonPathSuffix
	} else {
		out.CommonPathSuffix = sentinelEmpty
	}

	return out
}

func formatCNRL(c types.CommonNetworkRelativeLink) CNRLFormatted {
	var flagsDisplay string
	switch c.Flags {
	case 0:
		flagsDisplay = "[NO FLAGS SET]"
	case format.CNRLFlagValidDevice:
		flagsDisplay = "ValidDevice"
	case format.CNRLFlagValidNetType:
		flagsDisplay = "ValidNetType"
	case format.CNRLFlagValidDevice | format.CNRLFlagValidNetType:
		flagsDisplay = "ValidDevice | ValidNetType"
	default:
		flagsDisplay = "[INVALID VALUE]"
	}

	netName, deviceName := c.NetName, c.DeviceName
	if c.HasUnicodeNames {
		netName, deviceName = c.NetNameU, c.DeviceNameU
	}

	providerName := sentinelNA
	if c.NetworkProviderType == format.NetworkProviderLocalServer {
		providerName = "[UNKNOWN (Possibly Local Server)]"
	} else if name, ok := format.NetworkProviderNames[c.NetworkProviderType]; ok {
		providerName = name
	} else if c.NetworkProviderType != 0 {
		providerName = fmt.Sprintf("0x%08X [UNKNOWN TYPE]", c.NetworkProviderType)
	}

	return CNRLFormatted{
		Flags:               flagsDisplay,
		NetworkProviderType: providerName,
		NetName:             netName,
		DeviceName:          deviceName,
	}
}

func formatStringData(sd types.StringData) StringDataFormatted {
	slot := func(present bool, value string, chars int) (string, string) {
		if !present {
			return sentinelNotSet, sentinelNotSet
		}
		v := value
		if v == "" {
			v = sentinelEmpty
		}
		return v, fmt.Sprintf("%d", chars)
	}

	var out StringDataFormatted
	out.Name, out.NameChars = slot(sd.HasName, sd.Name, sd.NameChars)
	out.RelativePath, out.RelativePathChars = slot(sd.HasRelativePath, sd.RelativePath, sd.RelativePathChars)
	out.WorkingDir, out.WorkingDirChars = slot(sd.HasWorkingDir, sd.WorkingDir, sd.WorkingDirChars)
	out.Arguments, out.ArgumentsChars = slot(sd.HasArguments, sd.Arguments, sd.ArgumentsChars)
	out.IconLocation, out.IconLocationChars = slot(sd.HasIconLocation, sd.IconLocation, sd.IconLocationChars)
	return out
}

func formatExtraData(ed types.ExtraData) (kinds []string, details []string) {
	for _, blk := range ed.Blocks {
		name := blk.Name
		if name == "" {
			name = fmt.Sprintf("Unknown(0x%08X)", blk.Signature)
		}
		kinds = append(kinds, name)

		switch {
		case blk.Tracker != nil:
			t := blk.Tracker
			droid1Summary := guid.Summary(t.Droid[0])
			if c := guid.Decompose(t.Droid[0]); c.HasTime {
				droid1Summary += ", created " + format.FormatFiletimeShort(c.FiletimeTicks)
			}
			details = append(details, fmt.Sprintf(
				"TrackerData: machine_id=%s droid1=%s (%s) droid2=%s droid_birth1=%s droid_birth2=%s",
				t.MachineID,
				guid.String(t.Droid[0]), droid1Summary,
				guid.String(t.Droid[1]),
				guid.String(t.DroidBirth[0]), guid.String(t.DroidBirth[1]),
			))
		case blk.SpecialFolder != nil:
			s := blk.SpecialFolder
			details = append(details, fmt.Sprintf("SpecialFolderData: id=%d offset=%d", s.SpecialFolderID, s.Offset))
		case blk.KnownFolder != nil:
			k := blk.KnownFolder
			details = append(details, fmt.Sprintf("KnownFolderData: guid=%s offset=%d", guid.String(k.FolderID), k.Offset))
		case blk.PathPair != nil:
			p := blk.PathPair
			details = append(details, fmt.Sprintf("%s: ansi=%s unicode=%s", name, p.TargetAnsi, p.TargetUnicode))
		case blk.Shim != nil:
			details = append(details, fmt.Sprintf("ShimData: layer_name=%s", blk.Shim.LayerName))
		case name == "VistaAndAboveIDListDataBlock":
			details = append(details, fmt.Sprintf("VistaAndAboveIDListData: num_item_ids=%d", blk.VistaIDListCount))
		}
	}
	return kinds, details
}
