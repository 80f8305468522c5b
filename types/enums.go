// Enumerated types. Wire text is matched case-insensitively; unknown text
// is an xmlerr.KindUnknownEnumValue error.

package types

// BiosType is the chipset and firmware of a virtual machine.
type BiosType int

const (
	BiosTypeClusterDefault BiosType = iota
	BiosTypeI440fxSeaBios
	BiosTypeQ35Ovmf
	BiosTypeQ35SeaBios
	BiosTypeQ35SecureBoot
)

var biosTypeEnum = enum[BiosType]{
	name:    "bios_type",
	symbols: []string{"cluster_default", "i440fx_sea_bios", "q35_ovmf", "q35_sea_bios", "q35_secure_boot"},
}

// ParseBiosType returns the BiosType whose symbol is s.
func ParseBiosType(s string) (BiosType, error) { return biosTypeEnum.parse(s) }

func (v BiosType) String() string                { return biosTypeEnum.text(v) }
func (v BiosType) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *BiosType) UnmarshalText(b []byte) error { return biosTypeEnum.unmarshal(v, b) }

// DataCenterStatus is the status of a data center.
type DataCenterStatus int

const (
	DataCenterStatusContend DataCenterStatus = iota
	DataCenterStatusMaintenance
	DataCenterStatusNotOperational
	DataCenterStatusProblematic
	DataCenterStatusUninitialized
	DataCenterStatusUp
)

var dataCenterStatusEnum = enum[DataCenterStatus]{
	name:    "data_center_status",
	symbols: []string{"contend", "maintenance", "not_operational", "problematic", "uninitialized", "up"},
}

// ParseDataCenterStatus returns the DataCenterStatus whose symbol is s.
func ParseDataCenterStatus(s string) (DataCenterStatus, error) { return dataCenterStatusEnum.parse(s) }

func (v DataCenterStatus) String() string                { return dataCenterStatusEnum.text(v) }
func (v DataCenterStatus) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *DataCenterStatus) UnmarshalText(b []byte) error { return dataCenterStatusEnum.unmarshal(v, b) }

// DiskFormat is the on-storage format of a disk image.
type DiskFormat int

const (
	DiskFormatCow DiskFormat = iota
	DiskFormatRaw
)

var diskFormatEnum = enum[DiskFormat]{
	name:    "disk_format",
	symbols: []string{"cow", "raw"},
}

// ParseDiskFormat returns the DiskFormat whose symbol is s.
func ParseDiskFormat(s string) (DiskFormat, error) { return diskFormatEnum.parse(s) }

func (v DiskFormat) String() string                { return diskFormatEnum.text(v) }
func (v DiskFormat) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *DiskFormat) UnmarshalText(b []byte) error { return diskFormatEnum.unmarshal(v, b) }

type DiskStatus int

const (
	DiskStatusIllegal DiskStatus = iota
	DiskStatusLocked
	DiskStatusOk
)

var diskStatusEnum = enum[DiskStatus]{
	name:    "disk_status",
	symbols: []string{"illegal", "locked", "ok"},
}

// ParseDiskStatus returns the DiskStatus whose symbol is s.
func ParseDiskStatus(s string) (DiskStatus, error) { return diskStatusEnum.parse(s) }

func (v DiskStatus) String() string                { return diskStatusEnum.text(v) }
func (v DiskStatus) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *DiskStatus) UnmarshalText(b []byte) error { return diskStatusEnum.unmarshal(v, b) }

type HostStatus int

const (
	HostStatusConnecting HostStatus = iota
	HostStatusDown
	HostStatusError
	HostStatusInitializing
	HostStatusInstallFailed
	HostStatusInstalling
	HostStatusInstallingOs
	HostStatusKdumping
	HostStatusMaintenance
	HostStatusNonOperational
	HostStatusNonResponsive
	HostStatusPendingApproval
	HostStatusPreparingForMaintenance
	HostStatusReboot
	HostStatusUnassigned
	HostStatusUp
)

var hostStatusEnum = enum[HostStatus]{
	name:    "host_status",
	symbols: []string{"connecting", "down", "error", "initializing", "install_failed", "installing", "installing_os", "kdumping", "maintenance", "non_operational", "non_responsive", "pending_approval", "preparing_for_maintenance", "reboot", "unassigned", "up"},
}

// ParseHostStatus returns the HostStatus whose symbol is s.
func ParseHostStatus(s string) (HostStatus, error) { return hostStatusEnum.parse(s) }

func (v HostStatus) String() string                { return hostStatusEnum.text(v) }
func (v HostStatus) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *HostStatus) UnmarshalText(b []byte) error { return hostStatusEnum.unmarshal(v, b) }

// NetworkUsage is a role a logical network plays in a cluster.
type NetworkUsage int

const (
	NetworkUsageDefaultRoute NetworkUsage = iota
	NetworkUsageDisplay
	NetworkUsageGluster
	NetworkUsageManagement
	NetworkUsageMigration
	NetworkUsageVm
)

var networkUsageEnum = enum[NetworkUsage]{
	name:    "network_usage",
	symbols: []string{"default_route", "display", "gluster", "management", "migration", "vm"},
}

// ParseNetworkUsage returns the NetworkUsage whose symbol is s.
func ParseNetworkUsage(s string) (NetworkUsage, error) { return networkUsageEnum.parse(s) }

func (v NetworkUsage) String() string                { return networkUsageEnum.text(v) }
func (v NetworkUsage) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *NetworkUsage) UnmarshalText(b []byte) error { return networkUsageEnum.unmarshal(v, b) }

type NicInterface int

const (
	NicInterfaceE1000 NicInterface = iota
	NicInterfacePciPassthrough
	NicInterfaceRtl8139
	NicInterfaceRtl8139Virtio
	NicInterfaceSpaprVlan
	NicInterfaceVirtio
)

var nicInterfaceEnum = enum[NicInterface]{
	name:    "nic_interface",
	symbols: []string{"e1000", "pci_passthrough", "rtl8139", "rtl8139_virtio", "spapr_vlan", "virtio"},
}

// ParseNicInterface returns the NicInterface whose symbol is s.
func ParseNicInterface(s string) (NicInterface, error) { return nicInterfaceEnum.parse(s) }

func (v NicInterface) String() string                { return nicInterfaceEnum.text(v) }
func (v NicInterface) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *NicInterface) UnmarshalText(b []byte) error { return nicInterfaceEnum.unmarshal(v, b) }

// SsoMethod is a single sign-on method. It is the identity of a Method.
type SsoMethod int

const (
	SsoMethodGuestAgent SsoMethod = iota
)

var ssoMethodEnum = enum[SsoMethod]{
	name:    "sso_method",
	symbols: []string{"guest_agent"},
}

// ParseSsoMethod returns the SsoMethod whose symbol is s.
func ParseSsoMethod(s string) (SsoMethod, error) { return ssoMethodEnum.parse(s) }

func (v SsoMethod) String() string                { return ssoMethodEnum.text(v) }
func (v SsoMethod) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *SsoMethod) UnmarshalText(b []byte) error { return ssoMethodEnum.unmarshal(v, b) }

type StatisticKind int

const (
	StatisticKindCounter StatisticKind = iota
	StatisticKindGauge
)

var statisticKindEnum = enum[StatisticKind]{
	name:    "statistic_kind",
	symbols: []string{"counter", "gauge"},
}

// ParseStatisticKind returns the StatisticKind whose symbol is s.
func ParseStatisticKind(s string) (StatisticKind, error) { return statisticKindEnum.parse(s) }

func (v StatisticKind) String() string                { return statisticKindEnum.text(v) }
func (v StatisticKind) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *StatisticKind) UnmarshalText(b []byte) error { return statisticKindEnum.unmarshal(v, b) }

type StatisticUnit int

const (
	StatisticUnitBitsPerSecond StatisticUnit = iota
	StatisticUnitBytes
	StatisticUnitBytesPerSecond
	StatisticUnitCountPerSecond
	StatisticUnitNone
	StatisticUnitPercent
	StatisticUnitSeconds
)

var statisticUnitEnum = enum[StatisticUnit]{
	name:    "statistic_unit",
	symbols: []string{"bits_per_second", "bytes", "bytes_per_second", "count_per_second", "none", "percent", "seconds"},
}

// ParseStatisticUnit returns the StatisticUnit whose symbol is s.
func ParseStatisticUnit(s string) (StatisticUnit, error) { return statisticUnitEnum.parse(s) }

func (v StatisticUnit) String() string                { return statisticUnitEnum.text(v) }
func (v StatisticUnit) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *StatisticUnit) UnmarshalText(b []byte) error { return statisticUnitEnum.unmarshal(v, b) }

// VmStatus is the run state of a virtual machine.
type VmStatus int

const (
	VmStatusDown VmStatus = iota
	VmStatusImageLocked
	VmStatusMigrating
	VmStatusNotResponding
	VmStatusPaused
	VmStatusPoweringDown
	VmStatusPoweringUp
	VmStatusRebootInProgress
	VmStatusRestoringState
	VmStatusSavingState
	VmStatusSuspended
	VmStatusUnassigned
	VmStatusUnknown
	VmStatusUp
	VmStatusWaitForLaunch
)

var vmStatusEnum = enum[VmStatus]{
	name:    "vm_status",
	symbols: []string{"down", "image_locked", "migrating", "not_responding", "paused", "powering_down", "powering_up", "reboot_in_progress", "restoring_state", "saving_state", "suspended", "unassigned", "unknown", "up", "wait_for_launch"},
}

// ParseVmStatus returns the VmStatus whose symbol is s.
func ParseVmStatus(s string) (VmStatus, error) { return vmStatusEnum.parse(s) }

func (v VmStatus) String() string                { return vmStatusEnum.text(v) }
func (v VmStatus) MarshalText() ([]byte, error)  { return []byte(v.String()), nil }
func (v *VmStatus) UnmarshalText(b []byte) error { return vmStatusEnum.unmarshal(v, b) }
