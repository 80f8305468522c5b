package types

import "time"

// Identified holds the attributes and elements shared by every
// identified type.
type Identified struct {
	Href        string
	Id          string
	Name        *string
	Description *string
	Comment     *string
}

// Base returns the embedded Identified fields.
func (i *Identified) Base() *Identified { return i }

// Action is the result of an operation, such as starting a VM.
type Action struct {
	Identified
	Async  *bool
	Status *string
	Fault  *Fault
	Vm     *Vm
	Host   *Host
}

type Bios struct {
	Href     string
	BootMenu *BootMenu
	Type     *BiosType
}

type BootMenu struct {
	Href    string
	Enabled *bool
}

type Cluster struct {
	Identified
	Version     *string
	DataCenter  *DataCenter
	Networks    *List[Network]
	Permissions *List[Permission]
	Hosts       *List[Host]
	Vms         *List[Vm]
}

// CustomProperty is a name/value pair. Its collection tag,
// custom_properties, is not a plain "s" plural.
type CustomProperty struct {
	Href   string
	Name   *string
	Value  *string
	Regexp *string
}

type DataCenter struct {
	Identified
	Local       *bool
	Status      *DataCenterStatus
	Clusters    *List[Cluster]
	Networks    *List[Network]
	Permissions *List[Permission]
}

type Disk struct {
	Identified
	Alias           *string
	Bootable        *bool
	Shareable       *bool
	Sparse          *bool
	Format          *DiskFormat
	Status          *DiskStatus
	ProvisionedSize *int64
	ActualSize      *int64
	CreationTime    *time.Time
	Permissions     *List[Permission]
	Statistics      *List[Statistic]
	Vms             *List[Vm]
}

type DnsResolverConfiguration struct {
	Href        string
	NameServers []string
}

// Fault is the error document returned by the API.
type Fault struct {
	Href   string
	Reason *string
	Detail *string
}

type Host struct {
	Identified
	Address     *string
	Status      *HostStatus
	Memory      *int64
	Cluster     *Cluster
	Devices     *List[HostDevice]
	Nics        *List[Nic]
	Permissions *List[Permission]
	Statistics  *List[Statistic]
	Tags        *List[Tag]
}

// HostDevice is a device attached to a host. PhysicalFunction and
// ParentDevice refer back to the same type.
type HostDevice struct {
	Identified
	Capability       *string
	IommuGroup       *int64
	Placeholder      *bool
	Product          *Product
	Vendor           *Product
	VirtualFunctions *int64
	Driver           *string
	Host             *Host
	Vm               *Vm
	ParentDevice     *HostDevice
	PhysicalFunction *HostDevice
}

type Mac struct {
	Href    string
	Address *string
}

// Method is a single sign-on method; its id attribute is an SsoMethod.
type Method struct {
	Href string
	Id   *SsoMethod
}

type Network struct {
	Identified
	Mtu                      *int64
	Stp                      *bool
	Required                 *bool
	Usages                   []NetworkUsage
	Vlan                     *Vlan
	DataCenter               *DataCenter
	Cluster                  *Cluster
	DnsResolverConfiguration *DnsResolverConfiguration
	Permissions              *List[Permission]
}

type Nic struct {
	Identified
	Interface  *NicInterface
	Linked     *bool
	Plugged    *bool
	Mac        *Mac
	Vm         *Vm
	Host       *Host
	Statistics *List[Statistic]
}

type Permission struct {
	Identified
	Cluster    *Cluster
	DataCenter *DataCenter
	Disk       *Disk
	Host       *Host
	Role       *Role
	User       *User
	Vm         *Vm
}

type Permit struct {
	Identified
	Administrative *bool
	Role           *Role
}

type Product struct {
	Identified
}

type Role struct {
	Identified
	Administrative *bool
	Mutable        *bool
	Permits        *List[Permit]
	User           *User
}

type Sso struct {
	Href    string
	Methods *List[Method]
}

type Statistic struct {
	Identified
	Kind   *StatisticKind
	Unit   *StatisticUnit
	Values *List[Value]
	Disk   *Disk
	Host   *Host
	Nic    *Nic
	Vm     *Vm
}

// Tag is a label. Tags form a tree through Parent.
type Tag struct {
	Identified
	Parent *Tag
	Host   *Host
	Vm     *Vm
}

type User struct {
	Identified
	UserName    *string
	Principal   *string
	Email       *string
	Domain      *string
	LastName    *string
	Permissions *List[Permission]
	Roles       *List[Role]
	Tags        *List[Tag]
}

type Value struct {
	Href   string
	Datum  *float64
	Detail *string
}

// Vlan is a VLAN tag; its id attribute is the integer tag number.
type Vlan struct {
	Href string
	Id   *int64
}

type Vm struct {
	Identified
	Status                   *VmStatus
	StatusDetail             *string
	Memory                   *int64
	Stateless                *bool
	CreationTime             *time.Time
	StartTime                *time.Time
	StopTime                 *time.Time
	Fqdn                     *string
	UseLatestTemplateVersion *bool
	Bios                     *Bios
	Cluster                  *Cluster
	Host                     *Host
	Sso                      *Sso
	CustomProperties         *List[CustomProperty]
	Disks                    *List[Disk]
	HostDevices              *List[HostDevice]
	Nics                     *List[Nic]
	Permissions              *List[Permission]
	Statistics               *List[Statistic]
	Tags                     *List[Tag]
}
