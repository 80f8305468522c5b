package writer

import (
	"github.com/andaru/apixml/scalar"
	"github.com/andaru/apixml/types"
	"github.com/andaru/apixml/xmlutil"
)

func init() {
	add("action", "actions", writeAction)
	add("bios", "", writeBios)
	add("boot_menu", "", writeBootMenu)
	add("cluster", "clusters", writeCluster)
	add("custom_property", "custom_properties", writeCustomProperty)
	add("data_center", "data_centers", writeDataCenter)
	add("disk", "disks", writeDisk)
	add("dns_resolver_configuration", "", writeDnsResolverConfiguration)
	add("fault", "", writeFault)
	add("host", "hosts", writeHost)
	add("host_device", "host_devices", writeHostDevice)
	add("mac", "", writeMac)
	add("method", "methods", writeMethod)
	add("network", "networks", writeNetwork)
	add("nic", "nics", writeNic)
	add("permission", "permissions", writePermission)
	add("permit", "permits", writePermit)
	add("product", "products", writeProduct)
	add("role", "roles", writeRole)
	add("sso", "", writeSso)
	add("statistic", "statistics", writeStatistic)
	add("tag", "tags", writeTag)
	add("user", "users", writeUser)
	add("value", "values", writeValue)
	add("vlan", "", writeVlan)
	add("vm", "vms", writeVm)
}

func writeAction(w *Writer, tag string, o *types.Action) {
	w.identified(tag, &o.Identified)
	w.boolean("async", o.Async)
	w.string("status", o.Status)
	object(w, "fault", o.Fault, writeFault)
	object(w, "vm", o.Vm, writeVm)
	object(w, "host", o.Host, writeHost)
	w.end(tag)
}

func writeBios(w *Writer, tag string, o *types.Bios) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	object(w, "boot_menu", o.BootMenu, writeBootMenu)
	enum(w, "type", o.Type)
	w.end(tag)
}

func writeBootMenu(w *Writer, tag string, o *types.BootMenu) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	w.boolean("enabled", o.Enabled)
	w.end(tag)
}

func writeCluster(w *Writer, tag string, o *types.Cluster) {
	w.identified(tag, &o.Identified)
	w.string("version", o.Version)
	object(w, "data_center", o.DataCenter, writeDataCenter)
	list(w, "networks", "network", o.Networks, writeNetwork)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	list(w, "hosts", "host", o.Hosts, writeHost)
	list(w, "vms", "vm", o.Vms, writeVm)
	w.end(tag)
}

func writeCustomProperty(w *Writer, tag string, o *types.CustomProperty) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	w.string("name", o.Name)
	w.string("value", o.Value)
	w.string("regexp", o.Regexp)
	w.end(tag)
}

func writeDataCenter(w *Writer, tag string, o *types.DataCenter) {
	w.identified(tag, &o.Identified)
	w.boolean("local", o.Local)
	enum(w, "status", o.Status)
	list(w, "clusters", "cluster", o.Clusters, writeCluster)
	list(w, "networks", "network", o.Networks, writeNetwork)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	w.end(tag)
}

func writeDisk(w *Writer, tag string, o *types.Disk) {
	w.identified(tag, &o.Identified)
	w.string("alias", o.Alias)
	w.boolean("bootable", o.Bootable)
	w.boolean("shareable", o.Shareable)
	w.boolean("sparse", o.Sparse)
	enum(w, "format", o.Format)
	enum(w, "status", o.Status)
	w.integer("provisioned_size", o.ProvisionedSize)
	w.integer("actual_size", o.ActualSize)
	w.date("creation_time", o.CreationTime)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	list(w, "statistics", "statistic", o.Statistics, writeStatistic)
	list(w, "vms", "vm", o.Vms, writeVm)
	w.end(tag)
}

func writeDnsResolverConfiguration(w *Writer, tag string, o *types.DnsResolverConfiguration) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	w.strings("name_servers", "name_server", o.NameServers)
	w.end(tag)
}

func writeFault(w *Writer, tag string, o *types.Fault) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	w.string("reason", o.Reason)
	w.string("detail", o.Detail)
	w.end(tag)
}

func writeHost(w *Writer, tag string, o *types.Host) {
	w.identified(tag, &o.Identified)
	w.string("address", o.Address)
	enum(w, "status", o.Status)
	w.integer("memory", o.Memory)
	object(w, "cluster", o.Cluster, writeCluster)
	list(w, "devices", "host_device", o.Devices, writeHostDevice)
	list(w, "nics", "nic", o.Nics, writeNic)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	list(w, "statistics", "statistic", o.Statistics, writeStatistic)
	list(w, "tags", "tag", o.Tags, writeTag)
	w.end(tag)
}

func writeHostDevice(w *Writer, tag string, o *types.HostDevice) {
	w.identified(tag, &o.Identified)
	w.string("capability", o.Capability)
	w.integer("iommu_group", o.IommuGroup)
	w.boolean("placeholder", o.Placeholder)
	object(w, "product", o.Product, writeProduct)
	object(w, "vendor", o.Vendor, writeProduct)
	w.integer("virtual_functions", o.VirtualFunctions)
	w.string("driver", o.Driver)
	object(w, "host", o.Host, writeHost)
	object(w, "vm", o.Vm, writeVm)
	object(w, "parent_device", o.ParentDevice, writeHostDevice)
	object(w, "physical_function", o.PhysicalFunction, writeHostDevice)
	w.end(tag)
}

func writeMac(w *Writer, tag string, o *types.Mac) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	w.string("address", o.Address)
	w.end(tag)
}

func writeMethod(w *Writer, tag string, o *types.Method) {
	var id string
	if o.Id != nil {
		id = o.Id.String()
	}
	w.start(tag, xmlutil.Attr("href", o.Href), xmlutil.Attr("id", id))
	w.end(tag)
}

func writeNetwork(w *Writer, tag string, o *types.Network) {
	w.identified(tag, &o.Identified)
	w.integer("mtu", o.Mtu)
	w.boolean("stp", o.Stp)
	w.boolean("required", o.Required)
	enums(w, "usages", "usage", o.Usages)
	object(w, "vlan", o.Vlan, writeVlan)
	object(w, "data_center", o.DataCenter, writeDataCenter)
	object(w, "cluster", o.Cluster, writeCluster)
	object(w, "dns_resolver_configuration", o.DnsResolverConfiguration, writeDnsResolverConfiguration)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	w.end(tag)
}

func writeNic(w *Writer, tag string, o *types.Nic) {
	w.identified(tag, &o.Identified)
	enum(w, "interface", o.Interface)
	w.boolean("linked", o.Linked)
	w.boolean("plugged", o.Plugged)
	object(w, "mac", o.Mac, writeMac)
	object(w, "vm", o.Vm, writeVm)
	object(w, "host", o.Host, writeHost)
	list(w, "statistics", "statistic", o.Statistics, writeStatistic)
	w.end(tag)
}

func writePermission(w *Writer, tag string, o *types.Permission) {
	w.identified(tag, &o.Identified)
	object(w, "cluster", o.Cluster, writeCluster)
	object(w, "data_center", o.DataCenter, writeDataCenter)
	object(w, "disk", o.Disk, writeDisk)
	object(w, "host", o.Host, writeHost)
	object(w, "role", o.Role, writeRole)
	object(w, "user", o.User, writeUser)
	object(w, "vm", o.Vm, writeVm)
	w.end(tag)
}

func writePermit(w *Writer, tag string, o *types.Permit) {
	w.identified(tag, &o.Identified)
	w.boolean("administrative", o.Administrative)
	object(w, "role", o.Role, writeRole)
	w.end(tag)
}

func writeProduct(w *Writer, tag string, o *types.Product) {
	w.identified(tag, &o.Identified)
	w.end(tag)
}

func writeRole(w *Writer, tag string, o *types.Role) {
	w.identified(tag, &o.Identified)
	w.boolean("administrative", o.Administrative)
	w.boolean("mutable", o.Mutable)
	list(w, "permits", "permit", o.Permits, writePermit)
	object(w, "user", o.User, writeUser)
	w.end(tag)
}

func writeSso(w *Writer, tag string, o *types.Sso) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	list(w, "methods", "method", o.Methods, writeMethod)
	w.end(tag)
}

func writeStatistic(w *Writer, tag string, o *types.Statistic) {
	w.identified(tag, &o.Identified)
	enum(w, "kind", o.Kind)
	enum(w, "unit", o.Unit)
	list(w, "values", "value", o.Values, writeValue)
	object(w, "disk", o.Disk, writeDisk)
	object(w, "host", o.Host, writeHost)
	object(w, "nic", o.Nic, writeNic)
	object(w, "vm", o.Vm, writeVm)
	w.end(tag)
}

func writeTag(w *Writer, tag string, o *types.Tag) {
	w.identified(tag, &o.Identified)
	object(w, "parent", o.Parent, writeTag)
	object(w, "host", o.Host, writeHost)
	object(w, "vm", o.Vm, writeVm)
	w.end(tag)
}

func writeUser(w *Writer, tag string, o *types.User) {
	w.identified(tag, &o.Identified)
	w.string("user_name", o.UserName)
	w.string("principal", o.Principal)
	w.string("email", o.Email)
	w.string("domain", o.Domain)
	w.string("last_name", o.LastName)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	list(w, "roles", "role", o.Roles, writeRole)
	list(w, "tags", "tag", o.Tags, writeTag)
	w.end(tag)
}

func writeValue(w *Writer, tag string, o *types.Value) {
	w.start(tag, xmlutil.Attr("href", o.Href))
	w.decimal("datum", o.Datum)
	w.string("detail", o.Detail)
	w.end(tag)
}

func writeVlan(w *Writer, tag string, o *types.Vlan) {
	var id string
	if o.Id != nil {
		id = scalar.FormatInteger(*o.Id)
	}
	w.start(tag, xmlutil.Attr("href", o.Href), xmlutil.Attr("id", id))
	w.end(tag)
}

func writeVm(w *Writer, tag string, o *types.Vm) {
	w.identified(tag, &o.Identified)
	enum(w, "status", o.Status)
	w.string("status_detail", o.StatusDetail)
	w.integer("memory", o.Memory)
	w.boolean("stateless", o.Stateless)
	w.date("creation_time", o.CreationTime)
	w.date("start_time", o.StartTime)
	w.date("stop_time", o.StopTime)
	w.string("fqdn", o.Fqdn)
	w.boolean("use_latest_template_version", o.UseLatestTemplateVersion)
	object(w, "bios", o.Bios, writeBios)
	object(w, "cluster", o.Cluster, writeCluster)
	object(w, "host", o.Host, writeHost)
	object(w, "sso", o.Sso, writeSso)
	list(w, "custom_properties", "custom_property", o.CustomProperties, writeCustomProperty)
	list(w, "disks", "disk", o.Disks, writeDisk)
	list(w, "host_devices", "host_device", o.HostDevices, writeHostDevice)
	list(w, "nics", "nic", o.Nics, writeNic)
	list(w, "permissions", "permission", o.Permissions, writePermission)
	list(w, "statistics", "statistic", o.Statistics, writeStatistic)
	list(w, "tags", "tag", o.Tags, writeTag)
	w.end(tag)
}
