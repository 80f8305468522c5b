package types

import (
	"encoding/json"
	"testing"

	"github.com/andaru/apixml/xmlerr"
	"github.com/stretchr/testify/assert"
)

func TestParseEnum(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    VmStatus
		wantErr bool
	}{
		{in: "up", want: VmStatusUp},
		{in: "Up", want: VmStatusUp},
		{in: "UP", want: VmStatusUp},
		{in: "image_locked", want: VmStatusImageLocked},
		{in: "IMAGE_LOCKED", want: VmStatusImageLocked},
		{in: "wait_for_launch", want: VmStatusWaitForLaunch},
		{in: "bogus", wantErr: true},
		{in: "", wantErr: true},
		{in: " up", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			a := assert.New(t)
			got, err := ParseVmStatus(tc.in)
			if tc.wantErr {
				a.True(xmlerr.IsUnknownEnumValue(err), "%v", err)
				return
			}
			a.NoError(err)
			a.Equal(tc.want, got)
		})
	}
}

func TestEnumCaseInsensitive(t *testing.T) {
	a := assert.New(t)
	var got []NetworkUsage
	for _, in := range []string{"Management", "MANAGEMENT", "management"} {
		v, err := ParseNetworkUsage(in)
		a.NoError(err)
		got = append(got, v)
	}
	a.Equal([]NetworkUsage{NetworkUsageManagement, NetworkUsageManagement, NetworkUsageManagement}, got)

	_, err := ParseNetworkUsage("bogus")
	e, ok := xmlerr.As(err)
	if a.True(ok) {
		a.Equal("bogus", e.Value)
		a.Contains(e.Message, "network_usage")
	}
}

func TestEnumText(t *testing.T) {
	a := assert.New(t)
	a.Equal("q35_secure_boot", BiosTypeQ35SecureBoot.String())
	a.Equal("guest_agent", SsoMethodGuestAgent.String())
	a.Equal("e1000", NicInterfaceE1000.String())
	a.Equal("vm_status(99)", VmStatus(99).String())

	b, err := json.Marshal(struct {
		Format DiskFormat `json:"format"`
	}{DiskFormatCow})
	a.NoError(err)
	a.Equal(`{"format":"cow"}`, string(b))

	var v struct {
		Status HostStatus `json:"status"`
	}
	a.NoError(json.Unmarshal([]byte(`{"status":"Non_Responsive"}`), &v))
	a.Equal(HostStatusNonResponsive, v.Status)
	a.Error(json.Unmarshal([]byte(`{"status":"sleepy"}`), &v))
}

func TestList(t *testing.T) {
	a := assert.New(t)
	var nilList *List[Disk]
	a.Equal(0, nilList.Len())
	a.False(nilList.Placeholder())

	a.True((&List[Disk]{Href: "/api/disks"}).Placeholder())
	a.False((&List[Disk]{}).Placeholder())

	l := NewList(&Disk{Identified: Identified{Id: "1"}}, &Disk{Identified: Identified{Id: "2"}})
	a.Equal(2, l.Len())
	a.False(l.Placeholder())
	a.Equal("2", l.Items[1].Id)
}

func TestBase(t *testing.T) {
	vm := &Vm{}
	vm.Base().Href = "/api/vms/1"
	assert.Equal(t, "/api/vms/1", vm.Href)
}
