// Package format houses low-level decoders for the Windows Shell Link
// (".lnk", MS-SHLLINK) binary format. The goal is to keep the parsing
// focused, bounds-checked throughout, and independent from the public API
// so higher-level packages can orchestrate the data in a more ergonomic
// form.
package format

// ClassCLSID is the fixed 16-byte CLSID every valid shell link header
// carries at offset 0x04: {00021401-0000-0000-C000-000000000046}.
var ClassCLSID = GUID{
	0x01, 0x14, 0x02, 0x00,
	0x00, 0x00,
	0x00, 0x00,
	0xC0, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

const (
	// HeaderSize is the fixed size of the ShellLinkHeader structure.
	HeaderSize = 0x4C

	// Header field offsets, widths documented alongside each constant.
	HeaderSizeOffset    = 0x00 // u32
	HeaderCLSIDOffset   = 0x04 // 16 bytes
	HeaderFlagsOffset   = 0x14 // u32
	HeaderAttrsOffset   = 0x18 // u32
	HeaderCTimeOffset   = 0x1C // i64 FILETIME
	HeaderATimeOffset   = 0x24 // i64 FILETIME
	HeaderWTimeOffset   = 0x2C // i64 FILETIME
	HeaderTargetSzOff   = 0x34 // u32
	HeaderIconIdxOffset = 0x38 // i32
	HeaderShowStateOff  = 0x3C // u32
	HeaderHotkeyLowOff  = 0x40 // u8
	HeaderHotkeyHighOff = 0x41 // u8
	HeaderReserved1Off  = 0x42 // u16
	HeaderReserved2Off  = 0x44 // u32
	HeaderReserved3Off  = 0x48 // u32
)

// Header flag bits (LinkFlags), bit0 first.
const (
	FlagHasTargetIDList = 1 << iota
	FlagHasLinkInfo
	FlagHasName
	FlagHasRelativePath
	FlagHasWorkingDir
	FlagHasArguments
	FlagHasIconLocation
	FlagIsUnicode
	FlagForceNoLinkInfo
	FlagHasExpString
	FlagRunInSeparateProcess
	FlagUnused1
	FlagHasDarwinID
	FlagRunAsUser
	FlagHasExpIcon
	FlagNoPidlAlias
	FlagUnused2
	FlagRunWithShimLayer
	FlagForceNoLinkTrack
	FlagEnableTargetMetadata
	FlagDisableLinkPathTracking
	FlagDisableKnownFolderTracking
	FlagDisableKnownFolderAlias
	FlagAllowLinkToLink
	FlagUnaliasOnSave
	FlagPreferEnvironmentPath
	FlagKeepLocalIDListForUNC
)

// FlagNames gives the display token for each header flag bit, bit0 first.
// Order matches spec §4.8 exactly; a missing entry is never emitted because
// every one of the 27 defined bits has a name here.
var FlagNames = []string{
	"TARGET_ID_LIST",
	"LINK_INFO",
	"NAME",
	"RELATIVE_PATH",
	"WORKING_DIR",
	"ARGUMENTS",
	"ICON_LOCATION",
	"UNICODE",
	"FORCE_NO_LINK_INFO",
	"EXP_STRING",
	"RUN_SEP_PROCESS",
	"UNUSED_FLAG1",
	"DARWIN_ID",
	"RUN_AS_USER",
	"EXP_ICON",
	"NO_PIDL_ALIAS",
	"UNUSED_FLAG_2",
	"SHIM_LAYER",
	"FORCE_NO_LINK_TRACKER",
	"TARGET_METADATA",
	"DISABLE_LINK_PATH_TRACKING",
	"DISABLE_KNOWN_FOLDER_TRACKING",
	"DISABLE_KNOWN_FOLDER_ALIAS",
	"LINK_TO_LINK",
	"UNALIAS_ON_SAVE",
	"PREFER_ENVIRONMENT_PATH",
	"KEEP_LOCAL_ID_LIST",
}

// File attribute bits.
const (
	AttrReadOnly = 1 << iota
	AttrHidden
	AttrSystem
	AttrReserved1
	AttrDirectory
	AttrArchive
	AttrReserved2
	AttrNormal
	AttrTemporary
	AttrSparseFile
	AttrReparsePoint
	AttrCompressed
	AttrOffline
	AttrNotContentIndexed
	AttrEncrypted
)

// AttrNames pairs each named attribute bit with its display token, in the
// order spec §4.8 enumerates them. The two reserved bits have no entry.
// NORMAL takes part in the bitfield walk; the formatter special-cases an
// attribute value of 0 ("NONE") and of NORMAL alone.
var AttrNames = []struct {
	Bit  uint32
	Name string
}{
	{AttrReadOnly, "READONLY"},
	{AttrHidden, "HIDDEN"},
	{AttrSystem, "SYSTEM"},
	{AttrDirectory, "DIR"},
	{AttrArchive, "ARCHIVE"},
	{AttrNormal, "NORMAL"},
	{AttrTemporary, "TEMP"},
	{AttrSparseFile, "SPARSE"},
	{AttrReparsePoint, "REPARSE"},
	{AttrCompressed, "COMPRESSED"},
	{AttrOffline, "OFFLINE"},
	{AttrNotContentIndexed, "NOT_INDEXED"},
	{AttrEncrypted, "ENCRYPTED"},
}

// StringData slot indices, in on-wire order. Each maps to header flag bit
// 2..6 respectively.
const (
	StringSlotName = iota
	StringSlotRelativePath
	StringSlotWorkingDir
	StringSlotArguments
	StringSlotIconLocation
)

// StringSlotFlagBit returns the header flag bit gating a given slot.
var StringSlotFlagBit = [5]uint32{
	FlagHasName,
	FlagHasRelativePath,
	FlagHasWorkingDir,
	FlagHasArguments,
	FlagHasIconLocation,
}

// StringSlotMaxChars is the character count above which a StringData item
// is flagged Truncated. The stored bytes and the on-wire advance both use
// the declared count_chars regardless of this limit.
const StringSlotMaxChars = 299

// TargetIDList / LinkInfo / CNRL field offsets (relative to the start of
// each substructure's own buffer).
const (
	// TargetIDList
	IDListSizeOffset = 0x00 // u16, list_size field itself

	// LinkInfo fixed prefix, relative to the start of LinkInfo (the size
	// field occupies the first 4 bytes and is included in these offsets).
	LinkInfoSizeOffset              = 0x00 // u32
	LinkInfoHeaderSizeOffset        = 0x04 // u32
	LinkInfoFlagsOffset             = 0x08 // u32
	LinkInfoVolIDOffsetOffset       = 0x0C // u32
	LinkInfoLocalBasePathOffOffset  = 0x10 // u32
	LinkInfoCNRLOffsetOffset        = 0x14 // u32
	LinkInfoCommonSuffixOffOffset   = 0x18 // u32
	LinkInfoLocalBasePathUOffOffset = 0x1C // u32, present iff header_size >= 0x24
	LinkInfoCommonSuffixUOffOffset  = 0x20 // u32, present iff header_size >= 0x24

	// LinkInfoHeaderSizeUnicodeThreshold is the minimum LinkInfo header_size
	// that enables the two Unicode offset fields above.
	LinkInfoHeaderSizeUnicodeThreshold = 0x24

	// LinkInfo.Flags bits.
	LinkInfoFlagVolumeIDAndLocalBasePath    = 0x1
	LinkInfoFlagCommonNetworkRelativeLinkAndSuffix = 0x2

	// VolumeID, relative to its own offset.
	VolumeIDSizeOffset        = 0x00 // u32
	VolumeIDDriveTypeOffset   = 0x04 // u32
	VolumeIDDriveSerialOffset = 0x08 // u32
	VolumeIDLabelOffOffset    = 0x0C // u32
	VolumeIDLabelOffUOffset   = 0x10 // u32, present iff LinkInfo header_size >= 0x24

	// CommonNetworkRelativeLink, relative to its own offset.
	CNRLSizeOffset           = 0x00 // u32
	CNRLFlagsOffset          = 0x04 // u32
	CNRLNetNameOffOffset     = 0x08 // u32
	CNRLDeviceNameOffOffset  = 0x0C // u32
	CNRLNetProviderTypeOff   = 0x10 // u32
	CNRLNetNameOffUOffset    = 0x14 // u32, present iff NetNameOffset > 0x14
	CNRLDeviceNameOffUOffset = 0x18 // u32, present iff NetNameOffset > 0x14

	// CNRLUnicodeOffsetThreshold gates the two unicode CNRL fields above.
	CNRLUnicodeOffsetThreshold = 0x14

	// CNRL.Flags bits.
	CNRLFlagValidDevice  = 0x1
	CNRLFlagValidNetType = 0x2
)

// DriveType enumerates VolumeID.DriveType.
type DriveType uint32

const (
	DriveUnknown DriveType = iota
	DriveNoRootDir
	DriveRemovable
	DriveFixed
	DriveRemote
	DriveCDROM
	DriveRAMDisk
)

// DriveTypeNames maps DriveType values to their display tokens.
var DriveTypeNames = map[DriveType]string{
	DriveUnknown:   "DRIVE_UNKNOWN",
	DriveNoRootDir: "DRIVE_NO_ROOT_DIR",
	DriveRemovable: "DRIVE_REMOVABLE",
	DriveFixed:     "DRIVE_FIXED",
	DriveRemote:    "DRIVE_REMOTE",
	DriveCDROM:     "DRIVE_CDROM",
	DriveRAMDisk:   "DRIVE_RAMDISK",
}

// NetworkProviderNames maps the WNNC_NET_* codes the reference decoder
// recognizes to their display tokens. 0x00020000 is special-cased by the
// reference as "possibly a local server" rather than a real provider.
var NetworkProviderNames = map[uint32]string{
	0x001A0000: "WNNC_NET_AVID",
	0x001B0000: "WNNC_NET_DOCUSPACE",
	0x001C0000: "WNNC_NET_MANGOSOFT",
	0x001D0000: "WNNC_NET_SERNET",
	0x001E0000: "WNNC_NET_RIVERFRONT1",
	0x001F0000: "WNNC_NET_RIVERFRONT2",
	0x00200000: "WNNC_NET_DECORB",
	0x00210000: "WNNC_NET_PROTSTOR",
	0x00220000: "WNNC_NET_FJ_REDIR",
	0x00230000: "WNNC_NET_DISTINCT",
	0x00240000: "WNNC_NET_TWINS",
	0x00250000: "WNNC_NET_RDR2SAMPLE",
	0x00260000: "WNNC_NET_CSC",
	0x00270000: "WNNC_NET_3IN1",
	0x00290000: "WNNC_NET_EXTENDNET",
	0x002A0000: "WNNC_NET_STAC",
	0x002B0000: "WNNC_NET_FOXBAT",
	0x002C0000: "WNNC_NET_YAHOO",
	0x002D0000: "WNNC_NET_EXIFS",
	0x002E0000: "WNNC_NET_DAV",
	0x002F0000: "WNNC_NET_KNOWARE",
	0x00300000: "WNNC_NET_OBJECT_DIRE",
	0x00310000: "WNNC_NET_MASFAX",
	0x00320000: "WNNC_NET_HOB_NFS",
	0x00330000: "WNNC_NET_SHIVA",
	0x00340000: "WNNC_NET_IBMAL",
	0x00350000: "WNNC_NET_LOCK",
	0x00360000: "WNNC_NET_TERMSRV",
	0x00370000: "WNNC_NET_SRT",
	0x00380000: "WNNC_NET_QUINCY",
	0x00390000: "WNNC_NET_OPENAFS",
	0x003A0000: "WNNC_NET_AVID1",
	0x003B0000: "WNNC_NET_DFS",
	0x003C0000: "WNNC_NET_KWNP",
	0x003D0000: "WNNC_NET_ZENWORKS",
	0x003E0000: "WNNC_NET_DRIVEONWEB",
	0x003F0000: "WNNC_NET_VMWARE",
	0x00400000: "WNNC_NET_RSFX",
	0x00410000: "WNNC_NET_MFILES",
	0x00420000: "WNNC_NET_MS_NFS",
	0x00430000: "WNNC_NET_GOOGLE",
}

// NetworkProviderLocalServer is the sentinel code the reference decoder
// renders as "[UNKNOWN (Possibly Local Server)]" rather than an unknown-type
// hex dump.
const NetworkProviderLocalServer = 0x00020000

// ExtraData block signatures (the 11 recognized kinds).
const (
	SigEnvironmentVariable uint32 = 0xA0000001
	SigConsole             uint32 = 0xA0000002
	SigTracker             uint32 = 0xA0000003
	SigConsoleFE           uint32 = 0xA0000004
	SigSpecialFolder       uint32 = 0xA0000005
	SigDarwin              uint32 = 0xA0000006
	SigIconEnvironment     uint32 = 0xA0000007
	SigShim                uint32 = 0xA0000008
	SigPropertyStore       uint32 = 0xA0000009
	SigVistaAndAboveIDList uint32 = 0xA000000A
	SigKnownFolder         uint32 = 0xA000000B
)

// ExtraDataBlockNames maps a recognized signature to its display name.
var ExtraDataBlockNames = map[uint32]string{
	SigEnvironmentVariable: "EnvironmentVariableDataBlock",
	SigConsole:             "ConsoleDataBlock",
	SigTracker:             "TrackerDataBlock",
	SigConsoleFE:           "ConsoleFEDataBlock",
	SigSpecialFolder:       "SpecialFolderDataBlock",
	SigDarwin:              "DarwinDataBlock",
	SigIconEnvironment:     "IconEnvironmentDataBlock",
	SigShim:                "ShimDataBlock",
	SigPropertyStore:       "PropertyStoreDataBlock",
	SigVistaAndAboveIDList: "VistaAndAboveIDListDataBlock",
	SigKnownFolder:         "KnownFolderDataBlock",
}

const (
	// ExtraDataBlockHeaderSize is block_size + block_signature, both u32.
	ExtraDataBlockHeaderSize = 8

	// ExtraDataMaxBlockSize is the sanity limit from spec §4.6/§7: a block
	// at or above this size aborts ExtraData parsing (recoverably).
	ExtraDataMaxBlockSize = 4096

	// ExtraDataMinTerminator is the smallest block_size value that is
	// treated as a real block; any smaller value is the section terminator.
	ExtraDataMinTerminator = 4

	// ShimLayerNameMaxChars caps the UTF-16LE layer name in a ShimDataBlock.
	ShimLayerNameMaxChars = 600

	// TrackerMachineIDSize is the fixed, NUL-padded machine name field.
	TrackerMachineIDSize = 16
)

// Show-state values and the normal-form fallback.
const (
	ShowNormal      = 1
	ShowMaximized   = 3
	ShowMinNoActive = 7
)

// Hotkey virtual-key ranges and the modifier bitfield (high byte).
const (
	HotkeyCharLow  = 0x30
	HotkeyCharHigh = 0x5A
	HotkeyF1       = 0x70
	HotkeyF24      = 0x87
	HotkeyNumLock    = 0x90
	HotkeyScrollLock = 0x91
)

// Hotkey modifier bitfield (high byte).
const (
	HotkeyModShift = 1 << iota
	HotkeyModCtrl
	HotkeyModAlt
)
