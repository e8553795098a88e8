package main

import (
	"fmt"
	"strings"

	"github.com/5l1v3r1/lifer/pkg/lnk"
)

// printTextRecord renders one decoded record in the long or short TXT
// form. Short form omits the file size, the reserved fields, the three
// FILETIME long variants, and the header size/CLSID/flags; attributes are
// printed in both forms (spec §6).
func printTextRecord(rec lnk.Record) {
	f := lnk.Format(rec)

	fmt.Printf("=== %s ===\n", f.Path)
	if !short {
		fmt.Printf("  file size: %d\n", rec.FileSize)
	}
	fmt.Printf("  atime: %s\n", f.AccessTimeShort)
	fmt.Printf("  mtime: %s\n", f.WriteTimeShort)
	fmt.Printf("  ctime: %s\n", f.CreationTimeShort)

	if !short {
		fmt.Printf("  header size: %s\n", f.HeaderSize)
		fmt.Printf("  clsid: %s\n", f.CLSID)
		fmt.Printf("  flags: %s\n", f.Flags)
	}
	fmt.Printf("  attributes: %s\n", f.Attributes)

	if !short {
		fmt.Printf("  creation time: %s\n", f.CreationTimeLong)
		fmt.Printf("  access time: %s\n", f.AccessTimeLong)
		fmt.Printf("  write time: %s\n", f.WriteTimeLong)
	}

	fmt.Printf("  target size: %s\n", f.TargetSize)
	fmt.Printf("  icon index: %s\n", f.IconIndex)
	fmt.Printf("  show state: %s\n", f.ShowState)
	fmt.Printf("  hotkey: %s\n", f.Hotkey)

	if !short {
		fmt.Printf("  reserved1: %s\n", f.Reserved1)
		fmt.Printf("  reserved2: %s\n", f.Reserved2)
		fmt.Printf("  reserved3: %s\n", f.Reserved3)
	}

	fmt.Printf("  target id list: size=%s count=%s\n", f.TargetIDListSize, f.TargetIDListCount)

	li := f.LinkInfo
	fmt.Printf("  link info: volume_type=%s volume_serial=%s volume_label=%s volume_label_unicode=%s local_base_path=%s\n",
		li.VolumeID.DriveType, li.VolumeID.DriveSerial, li.VolumeID.VolumeLabel, li.VolumeID.VolumeLabelUnicode, li.LocalBasePath)
	fmt.Printf("  cnrl: flags=%s provider=%s net_name=%s device_name=%s\n",
		li.CNRL.Flags, li.CNRL.NetworkProviderType, li.CNRL.NetName, li.CNRL.DeviceName)
	fmt.Printf("  common path suffix: %s\n", li.CommonPathSuffix)

	sd := f.StringData
	fmt.Printf("  name (%s): %s\n", sd.NameChars, sd.Name)
	fmt.Printf("  relative path (%s): %s\n", sd.RelativePathChars, sd.RelativePath)
	fmt.Printf("  working dir (%s): %s\n", sd.WorkingDirChars, sd.WorkingDir)
	fmt.Printf("  arguments (%s): %s\n", sd.ArgumentsChars, sd.Arguments)
	fmt.Printf("  icon location (%s): %s\n", sd.IconLocationChars, sd.IconLocation)

	if len(f.ExtraDataTypes) > 0 {
		fmt.Printf("  extra data types: %s\n", strings.Join(f.ExtraDataTypes, ", "))
		for _, d := range f.ExtraDataDetails {
			fmt.Printf("    %s\n", d)
		}
	}
}

func csvHeader() []string {
	h := []string{"path", "atime", "mtime", "ctime", "attributes", "target_size", "icon_index", "show_state", "hotkey"}
	if !short {
		h = append([]string{h[0], "file_size"}, h[1:]...)
		h = append(h, "header_size", "clsid", "flags", "reserved1", "reserved2", "reserved3")
	}
	h = append(h, "target_id_list_size", "target_id_list_count",
		"volume_type", "volume_serial", "volume_label", "volume_label_unicode", "local_base_path",
		"cnrl_flags", "cnrl_provider", "net_name", "device_name", "common_path_suffix",
		"name", "relative_path", "working_dir", "arguments", "icon_location",
		"extra_data_types")
	return h
}

func csvRow(rec lnk.Record) []string {
	f := lnk.Format(rec)
	row := []string{f.Path, f.AccessTimeShort, f.WriteTimeShort, f.CreationTimeShort, f.Attributes, f.TargetSize, f.IconIndex, f.ShowState, f.Hotkey}
	if !short {
		row = append([]string{row[0], fmt.Sprintf("%d", rec.FileSize)}, row[1:]...)
		row = append(row, f.HeaderSize, f.CLSID, f.Flags, f.Reserved1, f.Reserved2, f.Reserved3)
	}
	li := f.LinkInfo
	sd := f.StringData
	row = append(row,
		f.TargetIDListSize, f.TargetIDListCount,
		li.VolumeID.DriveType, li.VolumeID.DriveSerial, li.VolumeID.VolumeLabel, li.VolumeID.VolumeLabelUnicode, li.LocalBasePath,
		li.CNRL.Flags, li.CNRL.NetworkProviderType, li.CNRL.NetName, li.CNRL.DeviceName, li.CommonPathSuffix,
		sd.Name, sd.RelativePath, sd.WorkingDir, sd.Arguments, sd.IconLocation,
		strings.Join(f.ExtraDataTypes, "; "),
	)
	return row
}
