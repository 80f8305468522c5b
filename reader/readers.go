package reader

import (
	"github.com/andaru/apixml/registry"
	"github.com/andaru/apixml/scalar"
	"github.com/andaru/apixml/types"
)

// binding is the pair of registry functions of one type.
type binding struct {
	one, many registry.Func
}

// bindings maps tags.yaml type names to decoders.
var bindings = map[string]binding{
	"Action":                   actionDecoder.bind(),
	"Bios":                     biosDecoder.bind(),
	"BootMenu":                 bootMenuDecoder.bind(),
	"Cluster":                  clusterDecoder.bind(),
	"CustomProperty":           customPropertyDecoder.bind(),
	"DataCenter":               dataCenterDecoder.bind(),
	"Disk":                     diskDecoder.bind(),
	"DnsResolverConfiguration": dnsResolverConfigurationDecoder.bind(),
	"Fault":                    faultDecoder.bind(),
	"Host":                     hostDecoder.bind(),
	"HostDevice":               hostDeviceDecoder.bind(),
	"Mac":                      macDecoder.bind(),
	"Method":                   methodDecoder.bind(),
	"Network":                  networkDecoder.bind(),
	"Nic":                      nicDecoder.bind(),
	"Permission":               permissionDecoder.bind(),
	"Permit":                   permitDecoder.bind(),
	"Product":                  productDecoder.bind(),
	"Role":                     roleDecoder.bind(),
	"Sso":                      ssoDecoder.bind(),
	"Statistic":                statisticDecoder.bind(),
	"Tag":                      tagDecoder.bind(),
	"User":                     userDecoder.bind(),
	"Value":                    valueDecoder.bind(),
	"Vlan":                     vlanDecoder.bind(),
	"Vm":                       vmDecoder.bind(),
}

var actionDecoder = identified[types.Action](fields[types.Action]{
	"async":  func(d *dec, o *types.Action) (err error) { o.Async, err = scalar.Boolean(d.c); return },
	"status": func(d *dec, o *types.Action) (err error) { o.Status, err = scalar.String(d.c); return },
	"fault":  func(d *dec, o *types.Action) (err error) { o.Fault, err = one[types.Fault](d, "fault"); return },
	"vm":     func(d *dec, o *types.Action) (err error) { o.Vm, err = one[types.Vm](d, "vm"); return },
	"host":   func(d *dec, o *types.Action) (err error) { o.Host, err = one[types.Host](d, "host"); return },
}, nil)

var biosDecoder = &decoder[types.Bios]{
	href: func(o *types.Bios) *string { return &o.Href },
	fields: fields[types.Bios]{
		"boot_menu": func(d *dec, o *types.Bios) (err error) { o.BootMenu, err = one[types.BootMenu](d, "boot_menu"); return },
		"type":      func(d *dec, o *types.Bios) (err error) { o.Type, err = enum(d, types.ParseBiosType); return },
	},
}

var bootMenuDecoder = &decoder[types.BootMenu]{
	href: func(o *types.BootMenu) *string { return &o.Href },
	fields: fields[types.BootMenu]{
		"enabled": func(d *dec, o *types.BootMenu) (err error) { o.Enabled, err = scalar.Boolean(d.c); return },
	},
}

var clusterDecoder = identified[types.Cluster](fields[types.Cluster]{
	"version": func(d *dec, o *types.Cluster) (err error) { o.Version, err = scalar.String(d.c); return },
	"data_center": func(d *dec, o *types.Cluster) (err error) {
		o.DataCenter, err = one[types.DataCenter](d, "data_center")
		return
	},
	"networks": func(d *dec, o *types.Cluster) (err error) {
		o.Networks, err = many[types.Network](d, "networks")
		return
	},
	"permissions": func(d *dec, o *types.Cluster) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
	"hosts": func(d *dec, o *types.Cluster) (err error) { o.Hosts, err = many[types.Host](d, "hosts"); return },
	"vms":   func(d *dec, o *types.Cluster) (err error) { o.Vms, err = many[types.Vm](d, "vms"); return },
}, links[types.Cluster]{
	"networks":    placeholder(func(o *types.Cluster) **types.List[types.Network] { return &o.Networks }),
	"permissions": placeholder(func(o *types.Cluster) **types.List[types.Permission] { return &o.Permissions }),
	"hosts":       placeholder(func(o *types.Cluster) **types.List[types.Host] { return &o.Hosts }),
	"vms":         placeholder(func(o *types.Cluster) **types.List[types.Vm] { return &o.Vms }),
})

var customPropertyDecoder = &decoder[types.CustomProperty]{
	href: func(o *types.CustomProperty) *string { return &o.Href },
	fields: fields[types.CustomProperty]{
		"name":   func(d *dec, o *types.CustomProperty) (err error) { o.Name, err = scalar.String(d.c); return },
		"value":  func(d *dec, o *types.CustomProperty) (err error) { o.Value, err = scalar.String(d.c); return },
		"regexp": func(d *dec, o *types.CustomProperty) (err error) { o.Regexp, err = scalar.String(d.c); return },
	},
}

var dataCenterDecoder = identified[types.DataCenter](fields[types.DataCenter]{
	"local": func(d *dec, o *types.DataCenter) (err error) { o.Local, err = scalar.Boolean(d.c); return },
	"status": func(d *dec, o *types.DataCenter) (err error) {
		o.Status, err = enum(d, types.ParseDataCenterStatus)
		return
	},
	"clusters": func(d *dec, o *types.DataCenter) (err error) {
		o.Clusters, err = many[types.Cluster](d, "clusters")
		return
	},
	"networks": func(d *dec, o *types.DataCenter) (err error) {
		o.Networks, err = many[types.Network](d, "networks")
		return
	},
	"permissions": func(d *dec, o *types.DataCenter) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
}, links[types.DataCenter]{
	"clusters":    placeholder(func(o *types.DataCenter) **types.List[types.Cluster] { return &o.Clusters }),
	"networks":    placeholder(func(o *types.DataCenter) **types.List[types.Network] { return &o.Networks }),
	"permissions": placeholder(func(o *types.DataCenter) **types.List[types.Permission] { return &o.Permissions }),
})

var diskDecoder = identified[types.Disk](fields[types.Disk]{
	"alias":            func(d *dec, o *types.Disk) (err error) { o.Alias, err = scalar.String(d.c); return },
	"bootable":         func(d *dec, o *types.Disk) (err error) { o.Bootable, err = scalar.Boolean(d.c); return },
	"shareable":        func(d *dec, o *types.Disk) (err error) { o.Shareable, err = scalar.Boolean(d.c); return },
	"sparse":           func(d *dec, o *types.Disk) (err error) { o.Sparse, err = scalar.Boolean(d.c); return },
	"format":           func(d *dec, o *types.Disk) (err error) { o.Format, err = enum(d, types.ParseDiskFormat); return },
	"status":           func(d *dec, o *types.Disk) (err error) { o.Status, err = enum(d, types.ParseDiskStatus); return },
	"provisioned_size": func(d *dec, o *types.Disk) (err error) { o.ProvisionedSize, err = scalar.Integer(d.c); return },
	"actual_size":      func(d *dec, o *types.Disk) (err error) { o.ActualSize, err = scalar.Integer(d.c); return },
	"creation_time":    func(d *dec, o *types.Disk) (err error) { o.CreationTime, err = scalar.Date(d.c); return },
	"permissions": func(d *dec, o *types.Disk) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
	"statistics": func(d *dec, o *types.Disk) (err error) {
		o.Statistics, err = many[types.Statistic](d, "statistics")
		return
	},
	"vms": func(d *dec, o *types.Disk) (err error) { o.Vms, err = many[types.Vm](d, "vms"); return },
}, links[types.Disk]{
	"permissions": placeholder(func(o *types.Disk) **types.List[types.Permission] { return &o.Permissions }),
	"statistics":  placeholder(func(o *types.Disk) **types.List[types.Statistic] { return &o.Statistics }),
	"vms":         placeholder(func(o *types.Disk) **types.List[types.Vm] { return &o.Vms }),
})

var dnsResolverConfigurationDecoder = &decoder[types.DnsResolverConfiguration]{
	href: func(o *types.DnsResolverConfiguration) *string { return &o.Href },
	fields: fields[types.DnsResolverConfiguration]{
		"name_servers": func(d *dec, o *types.DnsResolverConfiguration) (err error) {
			o.NameServers, err = scalar.Strings(d.c)
			return
		},
	},
}

var faultDecoder = &decoder[types.Fault]{
	href: func(o *types.Fault) *string { return &o.Href },
	fields: fields[types.Fault]{
		"reason": func(d *dec, o *types.Fault) (err error) { o.Reason, err = scalar.String(d.c); return },
		"detail": func(d *dec, o *types.Fault) (err error) { o.Detail, err = scalar.String(d.c); return },
	},
}

var hostDecoder = identified[types.Host](fields[types.Host]{
	"address": func(d *dec, o *types.Host) (err error) { o.Address, err = scalar.String(d.c); return },
	"status":  func(d *dec, o *types.Host) (err error) { o.Status, err = enum(d, types.ParseHostStatus); return },
	"memory":  func(d *dec, o *types.Host) (err error) { o.Memory, err = scalar.Integer(d.c); return },
	"cluster": func(d *dec, o *types.Host) (err error) { o.Cluster, err = one[types.Cluster](d, "cluster"); return },
	"devices": func(d *dec, o *types.Host) (err error) {
		o.Devices, err = many[types.HostDevice](d, "host_devices")
		return
	},
	"nics": func(d *dec, o *types.Host) (err error) { o.Nics, err = many[types.Nic](d, "nics"); return },
	"permissions": func(d *dec, o *types.Host) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
	"statistics": func(d *dec, o *types.Host) (err error) {
		o.Statistics, err = many[types.Statistic](d, "statistics")
		return
	},
	"tags": func(d *dec, o *types.Host) (err error) { o.Tags, err = many[types.Tag](d, "tags"); return },
}, links[types.Host]{
	"devices":     placeholder(func(o *types.Host) **types.List[types.HostDevice] { return &o.Devices }),
	"nics":        placeholder(func(o *types.Host) **types.List[types.Nic] { return &o.Nics }),
	"permissions": placeholder(func(o *types.Host) **types.List[types.Permission] { return &o.Permissions }),
	"statistics":  placeholder(func(o *types.Host) **types.List[types.Statistic] { return &o.Statistics }),
	"tags":        placeholder(func(o *types.Host) **types.List[types.Tag] { return &o.Tags }),
})

var hostDeviceDecoder = identified[types.HostDevice](fields[types.HostDevice]{
	"capability":  func(d *dec, o *types.HostDevice) (err error) { o.Capability, err = scalar.String(d.c); return },
	"iommu_group": func(d *dec, o *types.HostDevice) (err error) { o.IommuGroup, err = scalar.Integer(d.c); return },
	"placeholder": func(d *dec, o *types.HostDevice) (err error) { o.Placeholder, err = scalar.Boolean(d.c); return },
	"product": func(d *dec, o *types.HostDevice) (err error) {
		o.Product, err = one[types.Product](d, "product")
		return
	},
	"vendor": func(d *dec, o *types.HostDevice) (err error) {
		o.Vendor, err = one[types.Product](d, "product")
		return
	},
	"virtual_functions": func(d *dec, o *types.HostDevice) (err error) { o.VirtualFunctions, err = scalar.Integer(d.c); return },
	"driver":            func(d *dec, o *types.HostDevice) (err error) { o.Driver, err = scalar.String(d.c); return },
	"host":              func(d *dec, o *types.HostDevice) (err error) { o.Host, err = one[types.Host](d, "host"); return },
	"vm":                func(d *dec, o *types.HostDevice) (err error) { o.Vm, err = one[types.Vm](d, "vm"); return },
	"parent_device": func(d *dec, o *types.HostDevice) (err error) {
		o.ParentDevice, err = one[types.HostDevice](d, "host_device")
		return
	},
	"physical_function": func(d *dec, o *types.HostDevice) (err error) {
		o.PhysicalFunction, err = one[types.HostDevice](d, "host_device")
		return
	},
}, nil)

var macDecoder = &decoder[types.Mac]{
	href: func(o *types.Mac) *string { return &o.Href },
	fields: fields[types.Mac]{
		"address": func(d *dec, o *types.Mac) (err error) { o.Address, err = scalar.String(d.c); return },
	},
}

var methodDecoder = &decoder[types.Method]{
	href: func(o *types.Method) *string { return &o.Href },
	id: func(o *types.Method, id string) error {
		v, err := types.ParseSsoMethod(id)
		if err != nil {
			return err
		}
		o.Id = &v
		return nil
	},
}

var networkDecoder = identified[types.Network](fields[types.Network]{
	"mtu":      func(d *dec, o *types.Network) (err error) { o.Mtu, err = scalar.Integer(d.c); return },
	"stp":      func(d *dec, o *types.Network) (err error) { o.Stp, err = scalar.Boolean(d.c); return },
	"required": func(d *dec, o *types.Network) (err error) { o.Required, err = scalar.Boolean(d.c); return },
	"usages":   func(d *dec, o *types.Network) (err error) { o.Usages, err = enums(d, types.ParseNetworkUsage); return },
	"vlan":     func(d *dec, o *types.Network) (err error) { o.Vlan, err = one[types.Vlan](d, "vlan"); return },
	"data_center": func(d *dec, o *types.Network) (err error) {
		o.DataCenter, err = one[types.DataCenter](d, "data_center")
		return
	},
	"cluster": func(d *dec, o *types.Network) (err error) { o.Cluster, err = one[types.Cluster](d, "cluster"); return },
	"dns_resolver_configuration": func(d *dec, o *types.Network) (err error) {
		o.DnsResolverConfiguration, err = one[types.DnsResolverConfiguration](d, "dns_resolver_configuration")
		return
	},
	"permissions": func(d *dec, o *types.Network) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
}, links[types.Network]{
	"permissions": placeholder(func(o *types.Network) **types.List[types.Permission] { return &o.Permissions }),
})

var nicDecoder = identified[types.Nic](fields[types.Nic]{
	"interface": func(d *dec, o *types.Nic) (err error) { o.Interface, err = enum(d, types.ParseNicInterface); return },
	"linked":    func(d *dec, o *types.Nic) (err error) { o.Linked, err = scalar.Boolean(d.c); return },
	"plugged":   func(d *dec, o *types.Nic) (err error) { o.Plugged, err = scalar.Boolean(d.c); return },
	"mac":       func(d *dec, o *types.Nic) (err error) { o.Mac, err = one[types.Mac](d, "mac"); return },
	"vm":        func(d *dec, o *types.Nic) (err error) { o.Vm, err = one[types.Vm](d, "vm"); return },
	"host":      func(d *dec, o *types.Nic) (err error) { o.Host, err = one[types.Host](d, "host"); return },
	"statistics": func(d *dec, o *types.Nic) (err error) {
		o.Statistics, err = many[types.Statistic](d, "statistics")
		return
	},
}, links[types.Nic]{
	"statistics": placeholder(func(o *types.Nic) **types.List[types.Statistic] { return &o.Statistics }),
})

var permissionDecoder = identified[types.Permission](fields[types.Permission]{
	"cluster": func(d *dec, o *types.Permission) (err error) {
		o.Cluster, err = one[types.Cluster](d, "cluster")
		return
	},
	"data_center": func(d *dec, o *types.Permission) (err error) {
		o.DataCenter, err = one[types.DataCenter](d, "data_center")
		return
	},
	"disk": func(d *dec, o *types.Permission) (err error) { o.Disk, err = one[types.Disk](d, "disk"); return },
	"host": func(d *dec, o *types.Permission) (err error) { o.Host, err = one[types.Host](d, "host"); return },
	"role": func(d *dec, o *types.Permission) (err error) { o.Role, err = one[types.Role](d, "role"); return },
	"user": func(d *dec, o *types.Permission) (err error) { o.User, err = one[types.User](d, "user"); return },
	"vm":   func(d *dec, o *types.Permission) (err error) { o.Vm, err = one[types.Vm](d, "vm"); return },
}, nil)

var permitDecoder = identified[types.Permit](fields[types.Permit]{
	"administrative": func(d *dec, o *types.Permit) (err error) { o.Administrative, err = scalar.Boolean(d.c); return },
	"role":           func(d *dec, o *types.Permit) (err error) { o.Role, err = one[types.Role](d, "role"); return },
}, nil)

var productDecoder = identified[types.Product](nil, nil)

var roleDecoder = identified[types.Role](fields[types.Role]{
	"administrative": func(d *dec, o *types.Role) (err error) { o.Administrative, err = scalar.Boolean(d.c); return },
	"mutable":        func(d *dec, o *types.Role) (err error) { o.Mutable, err = scalar.Boolean(d.c); return },
	"permits":        func(d *dec, o *types.Role) (err error) { o.Permits, err = many[types.Permit](d, "permits"); return },
	"user":           func(d *dec, o *types.Role) (err error) { o.User, err = one[types.User](d, "user"); return },
}, links[types.Role]{
	"permits": placeholder(func(o *types.Role) **types.List[types.Permit] { return &o.Permits }),
})

var ssoDecoder = &decoder[types.Sso]{
	href: func(o *types.Sso) *string { return &o.Href },
	fields: fields[types.Sso]{
		"methods": func(d *dec, o *types.Sso) (err error) { o.Methods, err = many[types.Method](d, "methods"); return },
	},
}

var statisticDecoder = identified[types.Statistic](fields[types.Statistic]{
	"kind":   func(d *dec, o *types.Statistic) (err error) { o.Kind, err = enum(d, types.ParseStatisticKind); return },
	"unit":   func(d *dec, o *types.Statistic) (err error) { o.Unit, err = enum(d, types.ParseStatisticUnit); return },
	"values": func(d *dec, o *types.Statistic) (err error) { o.Values, err = many[types.Value](d, "values"); return },
	"disk":   func(d *dec, o *types.Statistic) (err error) { o.Disk, err = one[types.Disk](d, "disk"); return },
	"host":   func(d *dec, o *types.Statistic) (err error) { o.Host, err = one[types.Host](d, "host"); return },
	"nic":    func(d *dec, o *types.Statistic) (err error) { o.Nic, err = one[types.Nic](d, "nic"); return },
	"vm":     func(d *dec, o *types.Statistic) (err error) { o.Vm, err = one[types.Vm](d, "vm"); return },
}, nil)

var tagDecoder = identified[types.Tag](fields[types.Tag]{
	"parent": func(d *dec, o *types.Tag) (err error) { o.Parent, err = one[types.Tag](d, "tag"); return },
	"host":   func(d *dec, o *types.Tag) (err error) { o.Host, err = one[types.Host](d, "host"); return },
	"vm":     func(d *dec, o *types.Tag) (err error) { o.Vm, err = one[types.Vm](d, "vm"); return },
}, nil)

var userDecoder = identified[types.User](fields[types.User]{
	"user_name": func(d *dec, o *types.User) (err error) { o.UserName, err = scalar.String(d.c); return },
	"principal": func(d *dec, o *types.User) (err error) { o.Principal, err = scalar.String(d.c); return },
	"email":     func(d *dec, o *types.User) (err error) { o.Email, err = scalar.String(d.c); return },
	"domain":    func(d *dec, o *types.User) (err error) { o.Domain, err = scalar.String(d.c); return },
	"last_name": func(d *dec, o *types.User) (err error) { o.LastName, err = scalar.String(d.c); return },
	"permissions": func(d *dec, o *types.User) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
	"roles": func(d *dec, o *types.User) (err error) { o.Roles, err = many[types.Role](d, "roles"); return },
	"tags":  func(d *dec, o *types.User) (err error) { o.Tags, err = many[types.Tag](d, "tags"); return },
}, links[types.User]{
	"permissions": placeholder(func(o *types.User) **types.List[types.Permission] { return &o.Permissions }),
	"roles":       placeholder(func(o *types.User) **types.List[types.Role] { return &o.Roles }),
	"tags":        placeholder(func(o *types.User) **types.List[types.Tag] { return &o.Tags }),
})

var valueDecoder = &decoder[types.Value]{
	href: func(o *types.Value) *string { return &o.Href },
	fields: fields[types.Value]{
		"datum":  func(d *dec, o *types.Value) (err error) { o.Datum, err = scalar.Decimal(d.c); return },
		"detail": func(d *dec, o *types.Value) (err error) { o.Detail, err = scalar.String(d.c); return },
	},
}

var vlanDecoder = &decoder[types.Vlan]{
	href: func(o *types.Vlan) *string { return &o.Href },
	id: func(o *types.Vlan, id string) error {
		v, err := scalar.ParseInteger(id)
		if err != nil {
			return err
		}
		o.Id = &v
		return nil
	},
}

var vmDecoder = identified[types.Vm](fields[types.Vm]{
	"status":                      func(d *dec, o *types.Vm) (err error) { o.Status, err = enum(d, types.ParseVmStatus); return },
	"status_detail":               func(d *dec, o *types.Vm) (err error) { o.StatusDetail, err = scalar.String(d.c); return },
	"memory":                      func(d *dec, o *types.Vm) (err error) { o.Memory, err = scalar.Integer(d.c); return },
	"stateless":                   func(d *dec, o *types.Vm) (err error) { o.Stateless, err = scalar.Boolean(d.c); return },
	"creation_time":               func(d *dec, o *types.Vm) (err error) { o.CreationTime, err = scalar.Date(d.c); return },
	"start_time":                  func(d *dec, o *types.Vm) (err error) { o.StartTime, err = scalar.Date(d.c); return },
	"stop_time":                   func(d *dec, o *types.Vm) (err error) { o.StopTime, err = scalar.Date(d.c); return },
	"fqdn":                        func(d *dec, o *types.Vm) (err error) { o.Fqdn, err = scalar.String(d.c); return },
	"use_latest_template_version": func(d *dec, o *types.Vm) (err error) { o.UseLatestTemplateVersion, err = scalar.Boolean(d.c); return },
	"bios":                        func(d *dec, o *types.Vm) (err error) { o.Bios, err = one[types.Bios](d, "bios"); return },
	"cluster":                     func(d *dec, o *types.Vm) (err error) { o.Cluster, err = one[types.Cluster](d, "cluster"); return },
	"host":                        func(d *dec, o *types.Vm) (err error) { o.Host, err = one[types.Host](d, "host"); return },
	"sso":                         func(d *dec, o *types.Vm) (err error) { o.Sso, err = one[types.Sso](d, "sso"); return },
	"custom_properties": func(d *dec, o *types.Vm) (err error) {
		o.CustomProperties, err = many[types.CustomProperty](d, "custom_properties")
		return
	},
	"disks": func(d *dec, o *types.Vm) (err error) { o.Disks, err = many[types.Disk](d, "disks"); return },
	"host_devices": func(d *dec, o *types.Vm) (err error) {
		o.HostDevices, err = many[types.HostDevice](d, "host_devices")
		return
	},
	"nics": func(d *dec, o *types.Vm) (err error) { o.Nics, err = many[types.Nic](d, "nics"); return },
	"permissions": func(d *dec, o *types.Vm) (err error) {
		o.Permissions, err = many[types.Permission](d, "permissions")
		return
	},
	"statistics": func(d *dec, o *types.Vm) (err error) {
		o.Statistics, err = many[types.Statistic](d, "statistics")
		return
	},
	"tags": func(d *dec, o *types.Vm) (err error) { o.Tags, err = many[types.Tag](d, "tags"); return },
}, links[types.Vm]{
	"disks":        placeholder(func(o *types.Vm) **types.List[types.Disk] { return &o.Disks }),
	"host_devices": placeholder(func(o *types.Vm) **types.List[types.HostDevice] { return &o.HostDevices }),
	"nics":         placeholder(func(o *types.Vm) **types.List[types.Nic] { return &o.Nics }),
	"permissions":  placeholder(func(o *types.Vm) **types.List[types.Permission] { return &o.Permissions }),
	"statistics":   placeholder(func(o *types.Vm) **types.List[types.Statistic] { return &o.Statistics }),
	"tags":         placeholder(func(o *types.Vm) **types.List[types.Tag] { return &o.Tags }),
})
